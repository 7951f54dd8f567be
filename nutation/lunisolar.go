// SPDX-License-Identifier: MIT

package nutation

// lunisolar is the IAU 2000A luni-solar nutation series (MHB2000,
// IERS Conventions 2003 Table 5.3a), largest terms first. The first 77
// rows are also the complete IAU 2000B series.
//
// TODO: transcribe rows 276-678 of Table 5.3a; TermCounts reports the
// current length and the full-precision 2000A checks skip until it is 678.
var lunisolar = [...]lunisolarTerm{
	// 1-10
	{0, 0, 0, 0, 1, -172064161, -174666, 33386, 92052331, 9086, 15377},
	{0, 0, 2, -2, 2, -13170906, -1675, -13696, 5730336, -3015, -4587},
	{0, 0, 2, 0, 2, -2276413, -234, 2796, 978459, -485, 1374},
	{0, 0, 0, 0, 2, 2074554, 207, -698, -897492, 470, -291},
	{0, 1, 0, 0, 0, 1475877, -3633, 11817, 73871, -184, -1924},
	{0, 1, 2, -2, 2, -516821, 1226, -524, 224386, -677, -174},
	{1, 0, 0, 0, 0, 711159, 73, -872, -6750, 0, 358},
	{0, 0, 2, 0, 1, -387298, -367, 380, 200728, 18, 318},
	{1, 0, 2, 0, 2, -301461, -36, 816, 129025, -63, 367},
	{0, -1, 2, -2, 2, 215829, -494, 111, -95929, 299, 132},

	// 11-20
	{0, 0, 2, -2, 1, 128227, 137, 181, -68982, -9, 39},
	{-1, 0, 2, 0, 2, 123457, 11, 19, -53311, 32, -4},
	{-1, 0, 0, 2, 0, 156994, 10, -168, -1235, 0, 82},
	{1, 0, 0, 0, 1, 63110, 63, 27, -33228, 0, -9},
	{-1, 0, 0, 0, 1, -57976, -63, -189, 31429, 0, -75},
	{-1, 0, 2, 2, 2, -59641, -11, 149, 25543, -11, 66},
	{1, 0, 2, 0, 1, -51613, -42, 129, 26366, 0, 78},
	{-2, 0, 2, 0, 1, 45893, 50, 31, -24236, -10, 20},
	{0, 0, 0, 2, 0, 63384, 11, -150, -1220, 0, 29},
	{0, 0, 2, 2, 2, -38571, -1, 158, 16452, -11, 68},

	// 21-30
	{0, -2, 2, -2, 2, 32481, 0, 0, -13870, 0, 0},
	{-2, 0, 0, 2, 0, -47722, 0, -18, 477, 0, -25},
	{2, 0, 2, 0, 2, -31046, -1, 131, 13238, -11, 59},
	{1, 0, 2, -2, 2, 28593, 0, -1, -12338, 10, -3},
	{-1, 0, 2, 0, 1, 20441, 21, 10, -10758, 0, -3},
	{2, 0, 0, 0, 0, 29243, 0, -74, -609, 0, 13},
	{0, 0, 2, 0, 0, 25887, 0, -66, -550, 0, 11},
	{0, 1, 0, 0, 1, -14053, -25, 79, 8551, -2, -45},
	{-1, 0, 0, 2, 1, 15164, 10, 11, -8001, 0, -1},
	{0, 2, 2, -2, 2, -15794, 72, -16, 6850, -42, -5},

	// 31-40
	{0, 0, -2, 2, 0, 21783, 0, 13, -167, 0, 13},
	{1, 0, 0, -2, 1, -12873, -10, -37, 6953, 0, -14},
	{0, -1, 0, 0, 1, -12654, 11, 63, 6415, 0, 26},
	{-1, 0, 2, 2, 1, -10204, 0, 25, 5222, 0, 15},
	{0, 2, 0, 0, 0, 16707, -85, -10, 168, -1, 10},
	{1, 0, 2, 2, 2, -7691, 0, 44, 3268, 0, 19},
	{-2, 0, 2, 0, 0, -11024, 0, -14, 104, 0, 2},
	{0, 1, 2, 0, 2, 7566, -21, -11, -3250, 0, -5},
	{0, 0, 2, 2, 1, -6637, -11, 25, 3353, 0, 14},
	{0, -1, 2, 0, 2, -7141, 21, 8, 3070, 0, 4},

	// 41-50
	{0, 0, 0, 2, 1, -6302, -11, 2, 3272, 0, 4},
	{1, 0, 2, -2, 1, 5800, 10, 2, -3045, 0, -1},
	{2, 0, 2, -2, 2, 6443, 0, -7, -2768, 0, -4},
	{-2, 0, 0, 2, 1, -5774, -11, -15, 3041, 0, -5},
	{2, 0, 2, 0, 1, -5350, 0, 21, 2695, 0, 12},
	{0, -1, 2, -2, 1, -4752, -11, -3, 2719, 0, -3},
	{0, 0, 0, -2, 1, -4940, -11, -21, 2720, 0, -9},
	{-1, -1, 0, 2, 0, 7350, 0, -8, -51, 0, 4},
	{2, 0, 0, -2, 1, 4065, 0, 6, -2206, 0, 1},
	{1, 0, 0, 2, 0, 6579, 0, -24, -199, 0, 2},

	// 51-60
	{0, 1, 2, -2, 1, 3579, 0, 5, -1900, 0, 1},
	{1, -1, 0, 0, 0, 4725, 0, -6, -41, 0, 3},
	{-2, 0, 2, 0, 2, -3075, 0, -2, 1313, 0, -1},
	{3, 0, 2, 0, 2, -2904, 0, 15, 1233, 0, 7},
	{0, -1, 0, 2, 0, 4348, 0, -10, -81, 0, 2},
	{1, -1, 2, 0, 2, -2878, 0, 8, 1232, 0, 4},
	{0, 0, 0, 1, 0, -4230, 0, 5, -20, 0, -2},
	{-1, -1, 2, 2, 2, -2819, 0, 7, 1207, 0, 3},
	{-1, 0, 2, 0, 0, -4056, 0, 5, 40, 0, -2},
	{0, -1, 2, 2, 2, -2647, 0, 11, 1129, 0, 5},

	// 61-70
	{-2, 0, 0, 0, 1, -2294, 0, -10, 1266, 0, -4},
	{1, 1, 2, 0, 2, 2481, 0, -7, -1062, 0, -3},
	{2, 0, 0, 0, 1, 2179, 0, -2, -1129, 0, -2},
	{-1, 1, 0, 1, 0, 3276, 0, 1, -9, 0, 0},
	{1, 1, 0, 0, 0, -3389, 0, 5, 35, 0, -2},
	{1, 0, 2, 0, 0, 3339, 0, -13, -107, 0, 1},
	{-1, 0, 2, -2, 1, -1987, 0, -6, 1073, 0, -2},
	{1, 0, 0, 0, 2, -1981, 0, 0, 854, 0, 0},
	{-1, 0, 0, 1, 0, 4026, 0, -353, -553, 0, -139},
	{0, 0, 2, 1, 2, 1660, 0, -5, -710, 0, -2},

	// 71-77
	{-1, 0, 2, 4, 2, -1521, 0, 9, 647, 0, 4},
	{-1, 1, 0, 1, 1, 1314, 0, 0, -700, 0, 0},
	{0, -2, 2, -2, 1, -1283, 0, 0, 672, 0, 0},
	{1, 0, 2, 2, 1, -1331, 0, 8, 663, 0, 4},
	{-2, 0, 2, 2, 2, 1383, 0, -2, -594, 0, -2},
	{-1, 0, 0, 0, 2, 1405, 0, 4, -610, 0, 2},
	{1, 1, 2, -2, 2, 1290, 0, 0, -556, 0, 0},

	// 78-90
	{-2, 0, 2, 4, 2, -1214, 0, 5, 518, 0, 2},
	{-1, 0, 4, 0, 2, 1146, 0, -3, -490, 0, -1},
	{2, 0, 2, -2, 1, 1019, 0, -1, -527, 0, -1},
	{2, 0, 2, 2, 2, -1100, 0, 9, 465, 0, 4},
	{1, 0, 0, 2, 1, -970, 0, 2, 496, 0, 1},
	{3, 0, 0, 0, 0, 1575, 0, -6, -50, 0, 0},
	{3, 0, 2, -2, 2, 934, 0, -3, -399, 0, -1},
	{0, 0, 4, -2, 2, 922, 0, -1, -395, 0, -1},
	{0, 1, 2, 0, 1, 815, 0, -1, -422, 0, -1},
	{0, 0, -2, 2, 1, 834, 0, 2, -440, 0, 1},
	{0, 0, 2, -2, 3, 1248, 0, 0, -170, 0, 1},
	{-1, 0, 0, 4, 0, 1338, 0, -5, -39, 0, 0},
	{2, 0, -2, 0, 1, 716, 0, -2, -389, 0, -1},

	// 91-100
	{-2, 0, 0, 4, 0, 1282, 0, -3, -23, 0, 1},
	{-1, -1, 0, 2, 1, 742, 0, 1, -391, 0, 0},
	{-1, 0, 0, 1, 1, 1020, 0, -25, -495, 0, -10},
	{0, 1, 0, 0, 2, 715, 0, -4, -326, 0, 2},
	{0, 0, -2, 0, 1, -666, 0, -3, 369, 0, -1},
	{0, -1, 2, 0, 1, -667, 0, 1, 346, 0, 1},
	{0, 0, 2, -1, 2, -704, 0, 0, 304, 0, 0},
	{0, 0, 2, 4, 2, -694, 0, 5, 294, 0, 2},
	{-2, -1, 0, 2, 0, -1014, 0, -1, 4, 0, -1},
	{1, 1, 0, -2, 1, -585, 0, -2, 316, 0, -1},

	// 101-110
	{-1, 1, 0, 2, 0, -949, 0, 1, 8, 0, -1},
	{-1, 1, 0, 1, 2, -595, 0, 0, 258, 0, 0},
	{1, -1, 0, 0, 1, 528, 0, 0, -279, 0, 0},
	{1, -1, 2, 2, 2, -590, 0, 4, 252, 0, 2},
	{-1, 1, 2, 2, 2, 570, 0, -2, -244, 0, -1},
	{3, 0, 2, 0, 1, -502, 0, 3, 250, 0, 2},
	{0, 1, -2, 2, 0, -875, 0, 1, 29, 0, 0},
	{-1, 0, 0, -2, 1, -492, 0, -3, 275, 0, -1},
	{0, 1, 2, 2, 2, 535, 0, -2, -228, 0, -1},
	{-1, -1, 2, 2, 1, -467, 0, 1, 240, 0, 1},

	// 111-120
	{0, -1, 0, 0, 2, 591, 0, 0, -253, 0, 0},
	{1, 0, 2, -4, 1, -453, 0, -1, 244, 0, -1},
	{-1, 0, -2, 2, 0, 766, 0, 1, 9, 0, 0},
	{0, -1, 2, 2, 1, -446, 0, 2, 225, 0, 1},
	{2, -1, 2, 0, 2, -488, 0, 2, 207, 0, 1},
	{0, 0, 0, 2, 2, -468, 0, 0, 201, 0, 0},
	{1, -1, 2, 0, 1, -421, 0, 1, 216, 0, 1},
	{-1, 1, 2, 0, 2, 463, 0, 0, -200, 0, 0},
	{0, 1, 0, 2, 0, -673, 0, 2, 14, 0, 0},
	{0, -1, -2, 2, 0, 658, 0, 0, -2, 0, 0},

	// 121-130
	{0, 3, 2, -2, 2, -438, 0, 0, 188, 0, 0},
	{0, 0, 0, 1, 1, -390, 0, 0, 205, 0, 0},
	{-1, 0, 2, 2, 0, 639, -11, -2, -19, 0, 0},
	{2, 1, 2, 0, 2, 412, 0, -2, -176, 0, -1},
	{1, 1, 0, 0, 1, -361, 0, 0, 189, 0, 0},
	{1, 1, 2, 0, 1, 360, 0, -1, -185, 0, -1},
	{2, 0, 0, 2, 0, 588, 0, -3, -24, 0, 0},
	{1, 0, -2, 2, 0, -578, 0, 1, 5, 0, 0},
	{-1, 0, 0, 2, 2, -396, 0, 0, 171, 0, 0},
	{0, 1, 0, 1, 0, 565, 0, -1, -6, 0, 0},

	// 131-140
	{0, 1, 0, -2, 1, -335, 0, -1, 184, 0, -1},
	{-1, 0, 2, -2, 2, 357, 0, 1, -154, 0, 0},
	{0, 0, 0, -1, 1, 321, 0, 1, -174, 0, 0},
	{-1, 1, 0, 0, 1, -301, 0, -1, 162, 0, 0},
	{1, 0, 2, -1, 2, -334, 0, 0, 144, 0, 0},
	{1, -1, 0, 2, 0, 493, 0, -2, -15, 0, 0},
	{0, 0, 0, 4, 0, 494, 0, -2, -19, 0, 0},
	{1, 0, 2, 1, 2, 337, 0, -1, -143, 0, -1},
	{0, 0, 2, 1, 1, 280, 0, -1, -144, 0, 0},
	{1, 0, 0, -2, 2, 309, 0, 1, -134, 0, 0},

	// 141-150
	{-1, 0, 2, 4, 1, -263, 0, 2, 131, 0, 1},
	{1, 0, -2, 0, 1, 253, 0, 1, -138, 0, 0},
	{1, 1, 2, -2, 1, 245, 0, 0, -128, 0, 0},
	{0, 0, 2, 2, 0, 416, 0, -2, -17, 0, 0},
	{-1, 0, 2, -1, 2, -229, 0, 0, 99, 0, 0},
	{-2, 0, 2, 2, 1, 231, 0, 0, -119, 0, 0},
	{4, 0, 2, 0, 2, -259, 0, 2, 111, 0, 1},
	{2, -1, 0, 0, 0, 375, 0, -1, -3, 0, 0},
	{2, 1, 2, -2, 2, 252, 0, 0, -108, 0, 0},
	{0, 1, 2, 1, 2, -245, 0, 1, 104, 0, 0},

	// 151-160
	{1, 0, 4, -2, 2, 243, 0, -1, -104, 0, 0},
	{-1, -1, 0, 0, 1, 208, 0, 1, -112, 0, 0},
	{0, 1, 0, 2, 1, 199, 0, 0, -102, 0, 0},
	{-2, 0, 2, 4, 1, -208, 0, 1, 105, 0, 0},
	{2, 0, 2, 0, 0, 335, 0, -2, -14, 0, 0},
	{1, 0, 0, 1, 0, -325, 0, 1, 7, 0, 0},
	{-1, 0, 0, 4, 1, -187, 0, 0, 96, 0, 0},
	{-1, 0, 4, 0, 1, 197, 0, -1, -100, 0, 0},
	{2, 0, 2, 2, 1, -192, 0, 2, 94, 0, 1},
	{0, 0, 2, -3, 2, -188, 0, 0, 83, 0, 0},

	// 161-170
	{-1, -2, 0, 2, 0, 276, 0, 0, -2, 0, 0},
	{2, 1, 0, 0, 0, -286, 0, 1, 6, 0, 0},
	{0, 0, 4, 0, 2, 186, 0, -1, -79, 0, 0},
	{0, 0, 0, 0, 3, -219, 0, 0, 43, 0, 0},
	{0, 3, 0, 0, 0, 276, 0, 0, 2, 0, 0},
	{0, 0, 2, -4, 1, -153, 0, -1, 84, 0, 0},
	{0, -1, 0, 2, 1, -156, 0, 0, 81, 0, 0},
	{0, 0, 0, 4, 1, -154, 0, 1, 78, 0, 0},
	{-1, -1, 2, 4, 2, -174, 0, 1, 75, 0, 0},
	{1, 0, 2, 4, 2, -163, 0, 2, 69, 0, 1},

	// 171-180
	{-2, 2, 0, 2, 0, -228, 0, 0, 1, 0, 0},
	{-2, -1, 2, 0, 1, 91, 0, -4, -54, 0, -2},
	{-2, 0, 0, 2, 2, 175, 0, 0, -75, 0, 0},
	{-1, -1, 2, 0, 2, -159, 0, 0, 69, 0, 0},
	{0, 0, 4, -2, 1, 141, 0, 0, -72, 0, 0},
	{3, 0, 2, -2, 1, 147, 0, 0, -75, 0, 0},
	{-2, -1, 0, 2, 1, -132, 0, 0, 69, 0, 0},
	{1, 0, 0, -1, 1, 159, 0, -28, -54, 0, 11},
	{0, -2, 0, 2, 0, 213, 0, 0, -4, 0, 0},
	{-2, 0, 0, 4, 1, 123, 0, 0, -64, 0, 0},

	// 181-190
	{-3, 0, 0, 0, 1, -118, 0, -1, 66, 0, 0},
	{1, 1, 2, 2, 2, 144, 0, -1, -61, 0, 0},
	{0, 0, 2, 4, 1, -121, 0, 1, 60, 0, 0},
	{3, 0, 2, 2, 2, -134, 0, 1, 56, 0, 1},
	{-1, 1, 2, -2, 1, -105, 0, 0, 57, 0, 0},
	{2, 0, 0, -4, 1, -102, 0, 0, 56, 0, 0},
	{0, 0, 0, -2, 2, 120, 0, 0, -52, 0, 0},
	{2, 0, 2, -4, 1, 101, 0, 0, -54, 0, 0},
	{-1, 1, 0, 2, 1, -113, 0, 0, 59, 0, 0},
	{0, 0, 2, -1, 1, -106, 0, 0, 61, 0, 0},

	// 191-200
	{0, -2, 2, 2, 2, -129, 0, 1, 55, 0, 0},
	{2, 0, 0, 2, 1, -114, 0, 0, 57, 0, 0},
	{4, 0, 2, -2, 2, 113, 0, -1, -49, 0, 0},
	{2, 0, 0, -2, 2, -102, 0, 0, 44, 0, 0},
	{0, 2, 0, 0, 1, -94, 0, 0, 51, 0, 0},
	{1, 0, 0, -4, 1, -100, 0, -1, 56, 0, 0},
	{0, 2, 2, -2, 1, 87, 0, 0, -47, 0, 0},
	{-3, 0, 0, 4, 0, 161, 0, 0, -1, 0, 0},
	{-1, 1, 2, 0, 1, 96, 0, 0, -50, 0, 0},
	{-1, -1, 0, 4, 0, 151, 0, -1, -5, 0, 0},

	// 201-210
	{-1, -2, 2, 2, 2, -104, 0, 0, 44, 0, 0},
	{-2, -1, 2, 4, 2, -110, 0, 0, 48, 0, 0},
	{1, -1, 2, 2, 1, -100, 0, 1, 50, 0, 0},
	{-2, 1, 0, 2, 0, 92, 0, -5, 12, 0, -2},
	{-2, 1, 2, 0, 1, 82, 0, 0, -45, 0, 0},
	{2, 1, 0, -2, 1, 82, 0, 0, -45, 0, 0},
	{-3, 0, 2, 0, 1, -78, 0, 0, 41, 0, 0},
	{-2, 0, 2, -2, 1, -77, 0, 0, 43, 0, 0},
	{-1, 1, 0, 2, 2, 2, 0, 0, 54, 0, 0},
	{0, -1, 2, -1, 2, 94, 0, 0, -40, 0, 0},

	// 211-220
	{-1, 0, 4, -2, 2, -93, 0, 0, 40, 0, 0},
	{0, -2, 2, 0, 2, -83, 0, 10, 40, 0, -2},
	{-1, 0, 2, 1, 2, 83, 0, 0, -36, 0, 0},
	{2, 0, 0, 0, 2, -91, 0, 0, 39, 0, 0},
	{0, 0, 2, 0, 3, 128, 0, 0, -1, 0, 0},
	{-2, 0, 4, 0, 2, -79, 0, 0, 34, 0, 0},
	{-1, 0, -2, 0, 1, -83, 0, 0, 47, 0, 0},
	{-1, 1, 2, 2, 1, 84, 0, 0, -44, 0, 0},
	{3, 0, 0, 0, 1, 83, 0, 0, -43, 0, 0},
	{-1, 0, 2, 3, 2, 91, 0, 0, -39, 0, 0},

	// 221-230
	{2, -1, 2, 0, 1, -77, 0, 0, 39, 0, 0},
	{0, 1, 2, 2, 1, 84, 0, 0, -43, 0, 0},
	{0, -1, 2, 4, 2, -92, 0, 1, 39, 0, 0},
	{2, -1, 2, 2, 2, -92, 0, 1, 39, 0, 0},
	{0, 2, -2, 2, 0, -94, 0, 0, 0, 0, 0},
	{-1, -1, 2, -1, 1, 68, 0, 0, -36, 0, 0},
	{0, -2, 0, 0, 1, -61, 0, 0, 32, 0, 0},
	{1, 0, 2, -4, 2, 71, 0, 0, -31, 0, 0},
	{1, -1, 0, -2, 1, 62, 0, 0, -34, 0, 0},
	{-1, -1, 2, 0, 1, -63, 0, 0, 33, 0, 0},

	// 231-240
	{1, -1, 2, -2, 2, -73, 0, 0, 32, 0, 0},
	{-2, -1, 0, 4, 0, 115, 0, 0, -2, 0, 0},
	{-1, 0, 0, 3, 0, -103, 0, 0, -2, 0, 0},
	{-2, -1, 2, 2, 2, 63, 0, 0, -28, 0, 0},
	{0, 2, 2, 0, 2, 74, 0, 0, -32, 0, 0},
	{1, 1, 0, 2, 0, -103, 0, -3, 3, 0, -1},
	{2, 0, 2, -1, 2, -69, 0, 0, 30, 0, 0},
	{1, 0, 2, 1, 1, 57, 0, 0, -29, 0, 0},
	{4, 0, 0, 0, 0, 94, 0, 0, -4, 0, 0},
	{2, 1, 2, 0, 1, 64, 0, 0, -33, 0, 0},

	// 241-250
	{3, -1, 2, 0, 2, -63, 0, 0, 26, 0, 0},
	{-2, 2, 0, 2, 1, -38, 0, 0, 20, 0, 0},
	{1, 0, 2, -3, 1, -43, 0, 0, 24, 0, 0},
	{1, 1, 2, -4, 1, -45, 0, 0, 23, 0, 0},
	{-1, -1, 2, -2, 1, 47, 0, 0, -24, 0, 0},
	{0, -1, 0, -1, 1, -48, 0, 0, 25, 0, 0},
	{0, -1, 0, -2, 1, 45, 0, 0, -26, 0, 0},
	{-2, 0, 0, 0, 2, 56, 0, 0, -25, 0, 0},
	{-2, 0, -2, 2, 0, 88, 0, 0, 2, 0, 0},
	{-1, 0, -2, 4, 0, -75, 0, 0, 0, 0, 0},

	// 251-260
	{1, -2, 0, 0, 0, 85, 0, 0, 0, 0, 0},
	{0, 1, 0, 1, 1, 49, 0, 0, -26, 0, 0},
	{-1, 2, 0, 2, 0, -74, 0, -3, -1, 0, -1},
	{1, -1, 2, -2, 1, -39, 0, 0, 21, 0, 0},
	{1, 2, 2, -2, 2, 45, 0, 0, -20, 0, 0},
	{2, -1, 2, -2, 2, 51, 0, 0, -22, 0, 0},
	{1, 0, 2, -1, 1, -40, 0, 0, 21, 0, 0},
	{2, 1, 2, -2, 1, 41, 0, 0, -21, 0, 0},
	{-2, 0, 0, -2, 1, -42, 0, 0, 24, 0, 0},
	{1, -2, 2, 0, 2, -51, 0, 0, 22, 0, 0},

	// 261-270
	{0, 1, 2, 1, 1, -42, 0, 0, 22, 0, 0},
	{1, 0, 4, -2, 1, 39, 0, 0, -21, 0, 0},
	{-2, 0, 4, 2, 2, 46, 0, 0, -18, 0, 0},
	{1, 1, 2, 1, 2, -53, 0, 0, 22, 0, 0},
	{1, 0, 0, 4, 0, 82, 0, 0, -4, 0, 0},
	{1, 0, 2, 2, 0, 81, 0, -1, -4, 0, 0},
	{2, 0, 2, 1, 2, 47, 0, 0, -19, 0, 0},
	{3, 1, 2, 0, 2, 53, 0, 0, -23, 0, 0},
	{4, 0, 2, 0, 1, -45, 0, 0, 22, 0, 0},
	{-2, -1, 2, 0, 0, -44, 0, 0, -2, 0, 0},

	// 271-275
	{0, 1, -2, 2, 1, -33, 0, 0, 16, 0, 0},
	{1, 0, -2, 1, 0, -61, 0, 0, 1, 0, 0},
	{0, -1, -2, 2, 1, 28, 0, 0, -15, 0, 0},
	{2, -1, 0, -2, 1, -38, 0, 0, 19, 0, 0},
	{-1, 0, 2, -1, 1, -33, 0, 0, 21, 0, 0},
}
