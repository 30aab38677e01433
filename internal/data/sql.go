package data

const SQLCreate = `
PRAGMA foreign_keys = ON;
PRAGMA encoding = 'UTF-8';

CREATE TABLE IF NOT EXISTS sweep
(
    sweep_id   TEXT      NOT NULL PRIMARY KEY,
    created_at TIMESTAMP NOT NULL DEFAULT (datetime('now')),
    property   TEXT      NOT NULL CHECK ( property IN ('h', 'cp', 'k', 'mu', 'z') ),
    t_from     REAL      NOT NULL,
    t_to       REAL      NOT NULL,
    t_step     REAL      NOT NULL CHECK ( t_step > 0 ),
    note       TEXT      NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS sweep_point
(
    sweep_id TEXT    NOT NULL,
    seq      INTEGER NOT NULL CHECK ( seq >= 0 ),
    p        REAL    NOT NULL,
    t        REAL    NOT NULL,
    value    REAL,
    kind     TEXT,
    err      TEXT,
    PRIMARY KEY (sweep_id, seq),
    FOREIGN KEY (sweep_id) REFERENCES sweep (sweep_id) ON DELETE CASCADE,
    CHECK ( (value IS NULL) <> (err IS NULL) )
);

CREATE VIEW IF NOT EXISTS sweep_info AS
SELECT s.*,
       (SELECT count(*) FROM sweep_point q WHERE q.sweep_id = s.sweep_id)                        AS points,
       (SELECT count(*) FROM sweep_point q WHERE q.sweep_id = s.sweep_id AND q.err IS NOT NULL) AS failed
FROM sweep s;`
