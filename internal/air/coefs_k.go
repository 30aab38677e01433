package air

// Curve fits of thermal conductivity, NASA RP-1260.
var kTable = mustTable(PropK, Arity5, [NumDecades][]Fit{
	{ // 1e-4 atm
		{1750, C5(0.395299e01, 0.386816e02, 0.140687e03, 0.226110e03, 0.127138e03)},
		{2750, C5(0.119879e02, 0.412181e02, 0.717156e01, -0.911924e02, -0.810415e02)},
		{4750, C5(-0.832682e02, -0.419438e03, -0.751764e03, -0.566912e03, -0.157470e03)},
		{6250, C5(-0.103603e04, -0.242470e04, -0.206135e04, -0.757541e03, -0.108281e03)},
		{10250, C5(0.261125e02, 0.411940e01, -0.186054e02, -0.645054e01, -0.621476e01)},
		{17750, C5(0.246095e02, -0.507490e02, 0.369131e02, -0.897288e01, -0.623025e01)},
		{25000, C5(-0.571805e02, 0.168628e03, -0.181577e03, 0.859388e02, -0.213335e02)},
	},
	{ // 1e-3 atm
		{1750, C5(0.199665e01, 0.194822e02, 0.706404e02, 0.113538e03, 0.599079e02)},
		{2750, C5(-0.831120e02, -0.560438e03, -0.140314e04, -0.154128e04, -0.632398e03)},
		{4750, C5(-0.110139e03, -0.481050e03, -0.757873e03, -0.505860e03, -0.125800e03)},
		{6250, C5(0.299875e03, 0.923042e03, 0.992814e03, 0.442621e03, 0.634709e02)},
		{11250, C5(0.434485e02, 0.464790e01, -0.155778e02, -0.220224e01, -0.558790e01)},
		{18250, C5(0.895136e01, -0.322183e02, 0.350726e02, -0.129798e02, -0.498154e01)},
		{28000, C5(-0.422029e02, 0.144838e03, -0.182586e03, 0.101698e03, -0.270417e02)},
	},
	{ // 1e-2 atm
		{2250, C5(0.198558e01, 0.189164e02, 0.668384e02, 0.104546e03, 0.527822e02)},
		{3250, C5(0.595832e02, 0.288748e03, 0.500756e03, 0.363789e03, 0.844428e02)},
		{5750, C5(-0.442143e02, -0.206207e03, -0.324643e03, -0.204871e03, -0.494556e02)},
		{7750, C5(-0.584437e03, -0.873106e03, -0.445088e03, -0.927269e02, -0.128529e02)},
		{12750, C5(0.373716e02, -0.115449e02, -0.113653e02, 0.135799e01, -0.542822e01)},
		{18750, C5(-0.143675e02, 0.801073e01, 0.146420e02, -0.117248e02, -0.389761e01)},
		{30000, C5(0.502985e01, -0.960227e01, 0.196818e01, 0.643952e01, -0.896353e01)},
	},
	{ // 1e-1 atm
		{2250, C5(0.105928e01, 0.100924e02, 0.356709e02, 0.561818e02, 0.249670e02)},
		{4250, C5(0.101351e03, 0.490653e03, 0.868620e03, 0.666792e03, 0.180596e03)},
		{6750, C5(0.830640e01, -0.324274e02, -0.942568e02, -0.647282e02, -0.180857e02)},
		{9250, C5(-0.318301e03, -0.306306e03, -0.782124e02, -0.466313e01, -0.585083e01)},
		{16750, C5(0.469099e02, -0.330961e02, -0.146607e01, 0.306898e01, -0.562490e01)},
		{30000, C5(0.154279e02, -0.541310e02, 0.693640e02, -0.366810e02, 0.115271e01)},
	},
	{ // 1e0 atm
		{2250, C5(0.334316e00, 0.328202e01, 0.119939e02, 0.200944e02, 0.462882e01)},
		{4250, C5(0.109992e02, 0.387106e02, 0.387282e02, 0.548304e01, -0.120106e02)},
		{7750, C5(0.124072e02, -0.147438e02, -0.530293e02, -0.299886e02, -0.961485e01)},
		{10750, C5(-0.189644e03, -0.828711e02, 0.998789e01, 0.227739e01, -0.581069e01)},
		{19250, C5(0.298795e02, -0.381078e02, 0.117041e02, 0.122011e01, -0.578171e01)},
		{30000, C5(0.844897e01, -0.358117e02, 0.553921e02, -0.353787e02, 0.274595e01)},
	},
	{ // 1e1 atm
		{3250, C5(0.413573e00, 0.383393e01, 0.131885e02, 0.207305e02, 0.427728e01)},
		{5250, C5(0.821184e02, 0.308927e03, 0.423174e03, 0.250668e03, 0.475889e02)},
		{8750, C5(0.113875e02, -0.133907e02, -0.337860e02, -0.122339e02, -0.610064e01)},
		{13750, C5(-0.723261e02, 0.143656e02, 0.135247e02, -0.233991e01, -0.556444e01)},
		{30000, C5(-0.382696e01, 0.146502e02, -0.187337e02, 0.107119e02, -0.717162e01)},
	},
	{ // 1e2 atm
		{3750, C5(0.208749e00, 0.192122e01, 0.658813e01, 0.107630e02, -0.127699e01)},
		{6250, C5(0.378677e02, 0.123284e03, 0.144224e03, 0.728083e02, 0.684807e01)},
		{10750, C5(0.223116e02, 0.336369e00, -0.142705e02, -0.134534e01, -0.498832e01)},
		{30000, C5(0.792550e01, -0.216552e02, 0.204578e02, -0.597164e01, -0.485454e01)},
	},
})
