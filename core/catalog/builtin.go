package catalog

// builtin mirrors the "Standards" browse tree. Section IDs are the site's
// browse node numbers; 0 collects standards referenced from everywhere.
var builtin = []Section{
	{ID: 0, Title: "General", Standards: []int{453, 641, 788}},
	{ID: 32, Title: "Module formatting", Standards: []int{
		456, 455, 647, 640, 454, 686,
	}},
	{ID: 33, Title: "Built-in language constructs", Standards: []int{
		441, 444, 440, 439, 442, 445, 492, 639, 494, 498, 499, 790, 547,
	}},
	{ID: 34, Title: "Applied objects and collections", Standards: []int{
		782, 781, 693, 407, 409, 411, 544, 486, 451, 449, 450, 448, 447, 452,
	}},
	{ID: 26, Title: "Data processing", Standards: []int{
		787, 758, 726, 535, 412, 434, 435, 438, 436, 437,
		729, 652, 654, 655, 656, 657, 658, 708, 733, 777, 791, 792,
		497, 496, 648, 490, 460, 783, 661, 664, 663, 662, 659,
	}},
	{ID: 1, Title: "Metadata objects", Standards: []int{
		467, 550, 643, 470, 413, 543, 677, 704, 469, 557, 785, 556, 680, 709, 723,
		480, 706, 731, 759, 798,
	}},
	{ID: 35, Title: "Client-server interaction", Standards: []int{
		748, 725, 542, 629, 487, 443, 459, 724,
	}},
	{ID: 36, Title: "Security", Standards: []int{
		794, 775, 774, 770, 669, 740, 679, 678,
	}},
	{ID: 38, Title: "Data exchange", Standards: []int{771, 701, 637}},
	{ID: 39, Title: "Library development", Standards: []int{
		690, 668, 644, 739, 554, 705, 553, 552, 551,
	}},
	{ID: 40, Title: "Localization", Standards: []int{
		784, 778, 766, 767, 765, 764, 763, 762, 761, 769, 458,
	}},
	{ID: 7, Title: "Interfaces (8.3)", Standards: []int{687, 722, 753, 727}},
	{ID: 11, Title: "User interfaces", Standards: []int{789, 548, 755, 642, 430, 468}},
	{ID: 15, Title: "Interfaces (8.2)", Standards: []int{
		667, 665, 423, 596, 586, 585, 615, 578, 401, 576, 600, 566,
	}},
	{ID: 23, Title: "Ordinary application", Standards: []int{524, 502, 501, 500}},
}
