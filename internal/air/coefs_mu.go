package air

// Curve fits of dynamic viscosity, NASA RP-1260.
var muTable = mustTable(PropMu, Arity6, [NumDecades][]Fit{
	{ // 1e-4 atm
		{7750, C6(-0.1160076e-4, 0.6656010e-3, -0.2933969e-3, 0.7427050e-4, -0.6456605e-5, 0.8752161e-7)},
		{10750, C6(-0.9105422e00, 0.4949794e00, -0.1060568e00, 0.1123425e-1, -0.5896774e-3, 0.1229026e-4)},
		{16750, C6(0.1463029e-1, -0.5019958e-2, 0.6886543e-3, -0.4723839e-4, 0.1623374e-5, -0.2239581e-7)},
		{25000, C6(-0.2140374e-2, 0.6529285e-3, -0.7290226e-4, 0.3865996e-5, -0.9908122e-7, 0.9916638e-9)},
	},
	{ // 1e-3 atm
		{8250, C6(0.2397194e-4, 0.5564725e-3, -0.1970968e-3, 0.4272210e-4, -0.2690853e-5, -0.3009241e-7)},
		{12250, C6(-0.5784272e00, 0.2816531e00, -0.5377449e-1, 0.5058384e-2, -0.2352317e-3, 0.4336410e-5)},
		{18750, C6(0.1658118e-1, -0.5027652e-2, 0.6106363e-3, -0.3715711e-4, 0.1135683e-5, -0.1397984e-7)},
		{28000, C6(0.6903134e-2, -0.1345295e-2, 0.1061916e-3, -0.4234384e-5, 0.8514686e-7, -0.6893227e-9)},
	},
	{ // 1e-2 atm
		{8750, C6(0.5085043e-4, 0.4774840e-3, -0.1322133e-3, 0.2362256e-4, -0.8014978e-6, -0.6458338e-7)},
		{14250, C6(-0.3414870e00, 0.1473594e00, -0.2471167e-1, 0.2030404e-2, -0.8216415e-4, 0.1314540e-5)},
		{19750, C6(0.2450600e-1, -0.6697224e-2, 0.7362709e-3, -0.4070960e-4, 0.1134307e-5, -0.1276018e-7)},
		{30000, C6(-0.3561146e-1, 0.7255623e-2, -0.5837678e-3, 0.2324839e-4, -0.4590857e-6, 0.3600777e-8)},
	},
	{ // 1e-1 atm
		{9750, C6(0.6394112e-4, 0.4385020e-3, -0.1024141e-3, 0.1654305e-4, -0.5014106e-6, -0.3710875e-7)},
		{16750, C6(-0.2376368e00, 0.9006170e-1, -0.1315352e-1, 0.9370344e-3, -0.3279124e-4, 0.4529650e-6)},
		{24500, C6(0.6309492e-3, 0.6108099e-3, -0.1286661e-3, 0.9381977e-5, -0.2960969e-6, 0.3444222e-8)},
		{30000, C6(-0.1622687e01, 0.3035173e00, -0.2266401e-1, 0.8445985e-3, -0.1570909e-4, 0.1166667e-6)},
	},
	{ // 1e0 atm
		{11250, C6(0.5781887e-4, 0.4438221e-3, -0.1020840e-3, 0.1688754e-4, -0.8622324e-6, -0.2239193e-9)},
		{19750, C6(-0.1844238e00, 0.6040101e-1, -0.7566737e-2, 0.4609058e-3, -0.1377229e-4, 0.1623637e-6)},
		{30000, C6(0.2606784e-1, -0.4562535e-2, 0.3111533e-3, -0.1018512e-4, 0.1576999e-6, -0.9011456e-9)},
	},
	{ // 1e1 atm
		{12750, C6(0.7256455e-4, 0.4050530e-3, -0.7626766e-4, 0.1114437e-4, -0.5020411e-6, 0.7074486e-10)},
		{21500, C6(-0.9524274e-1, 0.2589951e-1, -0.2593217e-2, 0.1227975e-3, -0.2772500e-5, 0.2383398e-7)},
		{30000, C6(0.5037513e-1, -0.8081647e-2, 0.5209350e-3, -0.1682098e-4, 0.2731352e-6, -0.1794872e-8)},
	},
	{ // 1e2 atm
		{15250, C6(0.7609039e-4, 0.3891948e-3, -0.6458779e-4, 0.8791566e-5, -0.4216496e-6, 0.4509800e-8)},
		{30000, C6(-0.7868582e-1, 0.1820922e-1, -0.1543467e-2, 0.6257766e-4, -0.1234998e-5, 0.9579999e-8)},
	},
})
