package air

// Curve fits of specific enthalpy, NASA RP-1260.
var hTable = mustTable(PropH, Arity5, [NumDecades][]Fit{
	{ // 1e-4 atm
		{2250, C5(0.128180e01, 0.121182e02, 0.424907e02, 0.665524e02, 0.385195e02)},
		{4250, C5(0.125380e02, 0.720107e02, 0.148949e03, 0.133853e03, 0.451550e02)},
		{6750, C5(0.426138e02, 0.123001e03, 0.121801e03, 0.509305e02, 0.995964e01)},
		{10750, C5(0.885088e01, -0.207380e02, -0.134604e02, 0.166408e01, 0.356570e01)},
		{17750, C5(0.151569e02, -0.713138e01, -0.172524e00, 0.643645e00, 0.356353e01)},
		{25000, C5(0.101759e02, -0.161956e02, -0.336892e01, 0.161274e02, -0.201068e01)},
	},
	{ // 1e-3 atm
		{2250, C5(0.902850e00, 0.839944e01, 0.289458e02, 0.448640e02, 0.256452e02)},
		{4250, C5(0.237222e02, 0.118014e03, 0.214780e03, 0.171168e03, 0.513939e02)},
		{6750, C5(0.880011e02, 0.213329e03, 0.181623e03, 0.661367e02, 0.110476e02)},
		{11750, C5(-0.333238e02, -0.316397e02, -0.401000e01, 0.379639e01, 0.325469e01)},
		{18750, C5(0.196866e02, -0.201771e02, 0.635249e01, -0.174347e00, 0.354258e01)},
		{28000, C5(0.446869e02, -0.141086e03, 0.159412e03, -0.738595e02, 0.155141e02)},
	},
	{ // 1e-2 atm
		{2750, C5(0.653358e00, 0.596886e01, 0.201689e02, 0.309518e02, 0.174843e02)},
		{5250, C5(0.431122e01, 0.267604e02, 0.541203e02, 0.462077e02, 0.152182e02)},
		{9750, C5(-0.126229e01, 0.113432e02, 0.109117e02, 0.400303e01, 0.284253e01)},
		{17750, C5(0.209845e02, -0.181381e02, -0.399635e00, 0.387388e01, 0.283981e01)},
		{30000, C5(0.268647e02, -0.104256e03, 0.145439e03, -0.846045e02, 0.212051e02)},
	},
	{ // 1e-1 atm
		{3250, C5(0.363885e00, 0.329839e01, 0.110641e02, 0.173605e02, 0.999025e01)},
		{6250, C5(-0.865884e01, -0.208034e02, -0.132700e02, 0.242899e01, 0.417259e01)},
		{15250, C5(-0.164319e02, -0.285858e00, 0.447878e01, 0.196275e01, 0.256061e01)},
		{30000, C5(-0.207249e02, 0.633182e02, -0.678713e02, 0.312942e02, -0.158288e01)},
	},
	{ // 1e0 atm
		{3750, C5(0.209284e00, 0.187458e01, 0.622153e01, 0.101561e02, 0.603650e01)},
		{8250, C5(-0.171560e02, -0.416138e02, -0.332532e02, -0.747816e01, 0.178858e01)},
		{17750, C5(-0.134978e02, 0.801118e01, 0.192371e01, 0.930272e00, 0.244209e01)},
		{30000, C5(-0.564265e01, 0.262889e02, -0.396119e02, 0.251297e02, -0.207198e01)},
	},
	{ // 1e1 atm
		{4250, C5(0.124937e00, 0.109286e01, 0.355163e01, 0.617946e01, 0.386028e01)},
		{9250, C5(-0.120314e02, -0.229170e02, -0.129249e02, 0.262066e00, 0.235363e01)},
		{18750, C5(-0.913636e01, 0.113996e02, -0.259796e01, 0.114665e01, 0.236890e01)},
		{30000, C5(0.639208e01, -0.149544e02, 0.882252e01, 0.258596e01, 0.107086e01)},
	},
	{ // 1e2 atm
		{6250, C5(-0.755123e-2, 0.164258e-1, 0.366590e00, 0.210603e01, 0.195195e01)},
		{12750, C5(-0.117469e01, -0.592622e01, -0.214181e01, 0.251111e01, 0.212013e01)},
		{30000, C5(-0.245329e01, 0.371340e01, -0.288683e00, 0.421200e00, 0.239842e01)},
	},
})
