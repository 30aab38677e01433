package air

// Curve fits of compressibility factor, NASA RP-1260.
var zTable = mustTable(PropZ, Arity5, [NumDecades][]Fit{
	{ // 1e-4 atm
		{2750, C5(0.710750e00, 0.107229e01, -0.125673e01, 0.564944e00, -0.822333e-1)},
		{5750, C5(-0.614415e01, 0.861656e01, -0.370256e01, 0.681208e00, -0.443045e-1)},
		{8750, C5(-0.632086e02, 0.370722e02, -0.776456e01, 0.706484e00, -0.233636e-1)},
		{17750, C5(-0.467833e02, 0.139011e02, -0.138693e01, 0.592861e-1, -0.903887e-3)},
		{25000, C5(0.556705e02, -0.135009e02, 0.118386e01, -0.427210e-1, 0.551468e-3)},
	},
	{ // 1e-3 atm
		{3250, C5(0.824286e00, 0.625098e00, -0.689867e00, 0.286982e00, -0.376727e-1)},
		{6750, C5(0.746758e01, -0.460729e01, 0.109594e01, -0.898428e-1, 0.162238e-2)},
		{9750, C5(-0.385889e02, 0.209649e02, -0.398276e01, 0.327436e00, -0.970559e-2)},
		{19750, C5(-0.455262e02, 0.121138e02, -0.108251e01, 0.415356e-1, -0.569596e-3)},
		{28000, C5(0.809623e02, -0.162146e02, 0.120105e01, -0.375039e-1, 0.424122e-3)},
	},
	{ // 1e-2 atm
		{3250, C5(0.873086e00, 0.434929e00, -0.454400e00, 0.176448e00, -0.212727e-1)},
		{7250, C5(-0.195828e01, 0.324383e01, -0.123210e01, 0.198816e00, -0.110471e-1)},
		{11750, C5(-0.417508e02, 0.199010e02, -0.334091e01, 0.243749e00, -0.644569e-2)},
		{21500, C5(-0.431463e02, 0.101757e02, -0.804882e00, 0.274096e-1, -0.334336e-3)},
		{30000, C5(0.208036e03, -0.342626e02, 0.210825e01, -0.563525e-1, 0.555405e-3)},
	},
	{ // 1e-1 atm
		{3750, C5(0.904213e00, 0.311295e00, -0.302086e00, 0.107468e00, -0.116924e-1)},
		{8250, C5(0.124751e01, 0.485004e00, -0.321087e00, 0.632573e-1, -0.364522e-2)},
		{13750, C5(-0.325326e02, 0.137742e02, -0.203163e01, 0.130377e00, -0.302863e-2)},
		{23500, C5(-0.428667e02, 0.888031e01, -0.620696e00, 0.188157e-1, -0.206237e-3)},
		{30000, C5(0.217096e03, -0.309522e02, 0.165245e01, -0.384201e-1, 0.330019e-3)},
	},
	{ // 1e0 atm
		{5750, C5(0.102671e01, -0.465274e-1, 0.972123e-2, 0.417402e-2, -0.536830e-3)},
		{9250, C5(0.387376e02, -0.204439e02, 0.404607e01, -0.344141e00, 0.107287e-1)},
		{15750, C5(-0.161621e02, 0.637080e01, -0.827695e00, 0.466769e-1, -0.941988e-3)},
		{23500, C5(-0.255245e02, 0.419968e01, -0.208573e00, 0.395832e-2, -0.175392e-4)},
		{30000, C5(-0.784807e02, 0.129796e02, -0.758996e00, 0.194343e-1, -0.182292e-3)},
	},
	{ // 1e1 atm
		{5750, C5(0.970875e00, 0.869030e-1, -0.737745e-1, 0.218303e-1, -0.179762e-2)},
		{9750, C5(-0.100200e01, 0.186655e01, -0.540958e00, 0.639254e-1, -0.255478e-2)},
		{17250, C5(-0.993188e01, 0.353080e01, -0.389667e00, 0.187431e-1, -0.320898e-3)},
		{30000, C5(0.398457e-1, -0.612253e00, 0.997312e-1, -0.411847e-2, 0.542207e-4)},
	},
	{ // 1e2 atm
		{8750, C5(0.103304e01, -0.585872e-1, 0.237877e-1, -0.281715e-2, 0.168221e-3)},
		{17750, C5(-0.555015e01, 0.157079e01, -0.115055e00, 0.324023e-2, -0.188832e-4)},
		{30000, C5(0.202955e02, -0.323532e01, 0.203092e00, -0.525620e-2, 0.489857e-4)},
	},
})
