package air

// Curve fits of specific heat at constant pressure, NASA RP-1260.
var cpTable = mustTable(PropCp, Arity5, [NumDecades][]Fit{
	{ // 1e-4 atm
		{1250, C5(0.349023e00, 0.344158e01, 0.126715e02, 0.208154e02, 0.116592e02)},
		{1750, C5(0.152264e02, 0.129277e03, 0.411057e03, 0.580300e03, 0.305728e03)},
		{2750, C5(-0.159675e02, -0.136508e03, -0.411657e03, -0.525250e03, -0.241298e03)},
		{4750, C5(-0.108293e03, -0.515276e03, -0.882748e03, -0.642505e03, -0.166628e03)},
		{6250, C5(-0.116246e04, -0.266973e04, -0.221802e04, -0.791376e03, -0.102433e03)},
		{9750, C5(-0.238707e02, -0.104336e03, -0.890658e02, -0.182697e02, 0.138792e01)},
		{14250, C5(-0.209557e02, 0.253228e02, 0.212355e02, -0.128857e02, 0.135712e01)},
		{19750, C5(0.762671e03, -0.167407e04, 0.130713e04, -0.422349e03, 0.482128e02)},
		{25000, C5(-0.789820e03, 0.263864e04, -0.326378e04, 0.176381e04, -0.348874e03)},
	},
	{ // 1e-3 atm
		{1250, C5(0.199532e00, 0.192597e01, 0.694347e01, 0.112521e02, 0.570825e01)},
		{2250, C5(0.345376e01, 0.315624e02, 0.107177e03, 0.160585e03, 0.884544e02)},
		{3750, C5(-0.369572e02, -0.128366e03, -0.129698e03, -0.169299e02, 0.207647e02)},
		{5250, C5(-0.146237e03, -0.581296e03, -0.848597e03, -0.532403e03, -0.119389e03)},
		{7250, C5(-0.758521e03, -0.139794e04, -0.900003e03, -0.238528e03, -0.216169e02)},
		{10750, C5(-0.330240e02, -0.866157e02, -0.489572e02, -0.182071e01, 0.229104e01)},
		{17250, C5(-0.618098e02, 0.103127e03, -0.262275e02, -0.850086e01, 0.253250e01)},
		{28000, C5(0.125063e03, -0.298121e03, 0.210795e03, -0.295269e02, -0.792067e01)},
	},
	{ // 1e-2 atm
		{1750, C5(0.669436e00, 0.644478e01, 0.230631e02, 0.365225e02, 0.203928e02)},
		{2750, C5(-0.453138e02, -0.292666e03, -0.699603e03, -0.730849e03, -0.281133e03)},
		{4750, C5(-0.151035e03, -0.591051e03, -0.835692e03, -0.502696e03, -0.107793e03)},
		{6750, C5(0.539167e03, 0.126894e04, 0.106221e04, 0.370582e03, 0.457650e02)},
		{12750, C5(0.217707e02, -0.450370e02, -0.192634e02, 0.517928e01, 0.180195e01)},
		{19750, C5(-0.122810e03, 0.240030e03, -0.138486e03, 0.225676e02, 0.100733e01)},
		{30000, C5(0.162348e03, -0.497482e03, 0.525270e03, -0.216688e03, 0.277132e02)},
	},
	{ // 1e-1 atm
		{1750, C5(0.291577e00, 0.278787e01, 0.992221e01, 0.157475e02, 0.820277e01)},
		{2750, C5(-0.662937e01, -0.382984e02, -0.779456e02, -0.627915e02, -0.154364e02)},
		{4250, C5(0.128388e03, 0.596922e03, 0.101945e04, 0.757047e03, 0.205793e03)},
		{6750, C5(-0.296048e02, -0.133243e03, -0.187832e03, -0.100614e03, -0.168003e02)},
		{9750, C5(-0.308894e03, -0.267701e03, -0.478605e02, 0.326629e01, 0.838365e00)},
		{15750, C5(0.104767e03, -0.105447e03, 0.127166e02, 0.595868e01, 0.821623e00)},
		{21500, C5(-0.188079e03, 0.472158e03, -0.407311e03, 0.141182e03, -0.156018e02)},
		{30000, C5(0.232697e03, -0.869061e03, 0.117775e04, -0.682883e03, 0.143551e03)},
	},
	{ // 1e0 atm
		{1750, C5(0.164992e00, 0.156336e01, 0.552429e01, 0.879873e01, 0.412806e01)},
		{3250, C5(-0.830572e01, -0.483112e02, -0.101598e03, -0.897230e02, -0.280651e02)},
		{4750, C5(0.848335e02, 0.361629e03, 0.561712e03, 0.376565e03, 0.915792e02)},
		{7750, C5(-0.945467e01, -0.640807e02, -0.893740e02, -0.403342e02, -0.458728e01)},
		{11750, C5(-0.153176e03, -0.476111e02, 0.217674e02, 0.314736e01, 0.922570e-1)},
		{20500, C5(0.975058e02, -0.158721e03, 0.753693e02, -0.936668e01, 0.987515e00)},
		{30000, C5(-0.473648e02, 0.818135e02, 0.169726e02, -0.836769e02, 0.339060e02)},
	},
	{ // 1e1 atm
		{1750, C5(0.111751e00, 0.105018e01, 0.368846e01, 0.591074e01, 0.244269e01)},
		{3250, C5(0.252675e00, 0.341131e01, 0.131529e02, 0.203259e02, 0.100197e02)},
		{5750, C5(0.450386e02, 0.167261e03, 0.224425e03, 0.128924e03, 0.263694e02)},
		{9250, C5(0.231376e02, -0.104484e01, -0.271807e02, -0.102436e02, -0.333185e-1)},
		{13750, C5(-0.799940e02, 0.170114e02, 0.187072e02, -0.350311e01, 0.184168e00)},
		{22500, C5(0.491689e02, -0.116351e03, 0.889977e02, -0.242638e02, 0.263659e01)},
		{30000, C5(-0.253231e03, 0.955890e03, -0.132457e04, 0.798459e03, -0.175990e03)},
	},
	{ // 1e2 atm
		{1750, C5(0.986591e-1, 0.923581e00, 0.323392e01, 0.519284e01, 0.202191e01)},
		{3750, C5(0.974261e-1, 0.146776e01, 0.575473e01, 0.896935e01, 0.384233e01)},
		{6750, C5(0.210207e02, 0.677318e02, 0.778089e02, 0.381171e02, 0.628850e01)},
		{10750, C5(0.143729e02, -0.128820e02, -0.173603e02, -0.137585e01, 0.743313e00)},
		{17750, C5(-0.347606e02, 0.320177e02, 0.148249e01, -0.510951e01, 0.877002e00)},
		{30000, C5(0.450529e02, -0.143364e03, 0.161302e03, -0.752038e02, 0.129598e02)},
	},
})
