package board

// Multipliers found by FindMagics(DefaultMagicSeed). Regenerate with
// cmd/shogigen and keep them in sync with the search.
var defaultMagics = Magics{
	Lance: [2][NumSquares]Bitboard{
		{
			{0x40010801a100a010, 0x02190}, {0x1004110400131419, 0x12004}, {0x08c200820058e840, 0x04010},
			{0x004040098280180c, 0x0c54c}, {0x0402e24046065004, 0x0a111}, {0x08c0048044080282, 0x02022},
			{0x0090407e20840b08, 0x010c2}, {0x8022501410068063, 0x0118c}, {0x4040080540c74341, 0x0c284},
			{0xe011960381051180, 0x05b04}, {0x4662120202001c43, 0x0916a}, {0x014886860048e000, 0x07c45},
			{0x4a084018801c4402, 0x0382a}, {0x9010130a080c0a40, 0x0c800}, {0x6c454880d018838c, 0x0259e},
			{0x1484864008c60020, 0x00001}, {0x08a92004e915a645, 0x10c20}, {0x50420c0100340240, 0x00601},
			{0x51840290a1522d24, 0x08819}, {0x42808ca283a12048, 0x00242}, {0x3043a08a08e82208, 0x08001},
			{0x91018318bb480100, 0x10c01}, {0xd2acc119098a8580, 0x02088}, {0xa02260c9272c0188, 0x02003},
			{0x111150c0826e102a, 0x06003}, {0xc53a400501e04543, 0x00801}, {0x0080610200230081, 0x00710},
			{0x021a8c0410e62600, 0x02020}, {0xfc18008503948060, 0x111a0}, {0x644a16248810b810, 0x00a80},
			{0x0809109930852512, 0x018b5}, {0x32481e169949224c, 0x0010a}, {0x1810808d06280350, 0x09410},
			{0x80024c0404aa1280, 0x06840}, {0x9819049b0279a018, 0x00c20}, {0x12c02a1c22c01200, 0x04232},
			{0x840800054068100a, 0x089c0}, {0x854a200750816490, 0x01c80}, {0x1008e42080108080, 0x0940d},
			{0x1040020100408692, 0x100c0}, {0x484204803823c826, 0x004a2}, {0x20870d90b0049003, 0x00124},
			{0x2010a040021b2448, 0x10419}, {0x2a600094410054d2, 0x002e4}, {0x0020958408888103, 0x0a820},
			{0x4254000383662130, 0x0a40b}, {0x2400400002001504, 0x00c48}, {0xc002928020112526, 0x1801c},
			{0x0082182000c01800, 0x00001}, {0x0101000413206024, 0x06c06}, {0x010449342a02ba10, 0x18280},
			{0x8910b2980c4b28a2, 0x08d81}, {0x08228a0104d08108, 0x101b5}, {0xaa2020e012001056, 0x02044},
			{0x2045450372898c40, 0x06200}, {0x4a105061800b2406, 0x059c8}, {0x88bb4004680d3a0d, 0x08044},
			{0x9000631202b098f1, 0x10120}, {0xa0180004480428e1, 0x00e40}, {0x1800650ec00a18c2, 0x00824},
			{0x00200000c2109c06, 0x1a010}, {0x0020140450456086, 0x11553}, {0x000012a18142048e, 0x04326},
			{0x8a80020201200812, 0x06003}, {0x8701c409c101a205, 0x08408}, {0x4121800000040406, 0x151c3},
			{0x03620032408c0255, 0x10006}, {0x4904838000005012, 0x009b2}, {0x6a8024704a0c8002, 0x00045},
			{0x04415a2240612238, 0x10069}, {0x0d9392010c813049, 0x1005d}, {0x3802224800028350, 0x002a0},
			{0x02c0000188201d82, 0x03000}, {0x828161220a000000, 0x0ce4c}, {0x02149a304c200811, 0x101c9},
			{0xc00c5681128c21a6, 0x10184}, {0x8084820084804104, 0x00124}, {0x0015470020009000, 0x09d18},
			{0xc10f25a4122c070d, 0x0e041}, {0xe050815624190159, 0x00404}, {0x0492c81929101074, 0x10082},
		},
		{
			{0x505a000904a15280, 0x021b2}, {0x065cc4428880404f, 0x08440}, {0x0069249000029b08, 0x0d480},
			{0x3202004140010480, 0x00c08}, {0xe01a03022e188090, 0x00990}, {0xb220000a01184404, 0x05028},
			{0x4480061288801104, 0x00082}, {0x04420aa84acc4001, 0x08540}, {0x12a07916832b12c5, 0x02308},
			{0x2115209068c08288, 0x12120}, {0x2140282221480010, 0x10068}, {0x20502a4e01083080, 0x00041},
			{0x8e2406e0028b2038, 0x0c343}, {0x3d6f229000405201, 0x10055}, {0x0d001e0000010018, 0x0c000},
			{0x403040d252caa0c8, 0x0a800}, {0x8a00018200100983, 0x10483}, {0x048001300090db01, 0x0001c},
			{0xa678308382446020, 0x008c5}, {0xa4d1002328016080, 0x00236}, {0x01a21200091d8030, 0x0a114},
			{0x0200006145104624, 0x000c4}, {0x90900001bc288852, 0x04024}, {0x0004072838008482, 0x00001},
			{0xc048419144002488, 0x15060}, {0x645004008406102e, 0x16120}, {0x068c0210600a8002, 0x05948},
			{0x93a3c8300411042c, 0x00094}, {0x0a033008144c0200, 0x02916}, {0x0254040bcc120012, 0x042ca},
			{0x1146812020400003, 0x02828}, {0x212085010702c610, 0x00486}, {0x36280804494052a1, 0x14082},
			{0x0d44166841800100, 0x00725}, {0x1a25020206c92000, 0x10874}, {0xc828a7b134002b25, 0x0400c},
			{0x543604c040000750, 0x03a40}, {0x1022480820208d00, 0x020c2}, {0x582e2142c9120008, 0x01013},
			{0x20c1099886062ecc, 0x00081}, {0x1501001000024944, 0x11011}, {0x1028a0007048d800, 0x1008a},
			{0x6104920008001ac0, 0x02100}, {0x13203000400d0000, 0x00000}, {0xc001062100888400, 0x02085},
			{0x401580440b0aa182, 0x080f0}, {0x0841054048044690, 0x00861}, {0x01070a8899a03112, 0x000a8},
			{0x382092a4421014c0, 0x14198}, {0x4b06044800120408, 0x00081}, {0x2028bc9081001e08, 0x01200},
			{0x406208d28b0aa082, 0x02300}, {0xa606d00241270814, 0x09104}, {0x0842018472a4d104, 0x01c12},
			{0x3045841486e4b242, 0x01014}, {0x82a43461c4042100, 0x1b209}, {0x0141650840dc2940, 0x14606},
			{0x2135cad310200050, 0x13104}, {0x602a0080a04b1886, 0x12288}, {0x4af4301401112e00, 0x002c0},
			{0xb31025d007000c20, 0x1c07f}, {0x9844810264481640, 0x11283}, {0x80900122141ab6c8, 0x15108},
			{0x4e4cb11114808e02, 0x00216}, {0x04004220d8121023, 0x02044}, {0x18114102412d0518, 0x00460},
			{0xc02b030008802170, 0x04482}, {0x48260112e4e07500, 0x012a7}, {0x9013000212021280, 0x108f0},
			{0x10c0d02404810068, 0x126a4}, {0x1040039811e04000, 0x00000}, {0x8001908087451000, 0x04404},
			{0x0869980202420000, 0x09a04}, {0x100408104110605c, 0x02881}, {0x1841020a00082801, 0x00108},
			{0xc04401012020cc00, 0x0a0c9}, {0x00860028a00c1080, 0x1800c}, {0x08a0801022209009, 0x14341},
			{0x4010061610440800, 0x04500}, {0x1418920808080a80, 0x08054}, {0x10302004c0404302, 0x0a022},
		},
	},
	Bishop: [NumSquares]Bitboard{
		{0xe18010222d2c4340, 0x05005}, {0x80a40201a00016a0, 0x18560}, {0x4410531001020302, 0x06404},
		{0x1c0431002000022d, 0x1f039}, {0x0c092218103a0246, 0x0248e}, {0x40424e09b04490ad, 0x1ab40},
		{0x2c40450b01058013, 0x09583}, {0x40941e600418271f, 0x02490}, {0xcda0a00920800c00, 0x08836},
		{0x1a0a802108285009, 0x05442}, {0x0c01220100b00950, 0x1220c}, {0xa40a088c8032c00a, 0x04290},
		{0x81c8480450c8140c, 0x1001a}, {0x920c89292002d220, 0x06a04}, {0xb40900406c602308, 0x1383a},
		{0x2000805853000d0d, 0x07391}, {0x08a30c8c132852bc, 0x18180}, {0x24a1a46320b84100, 0x19009},
		{0x0206c020f2092024, 0x01005}, {0x010200150e510092, 0x0c610}, {0x0408355328102981, 0x1cc04},
		{0xae100a500179aa21, 0x054c9}, {0x0040488230857e81, 0x0cc23}, {0x385a2545208f8038, 0x00015},
		{0x0140a5ac78808305, 0x11000}, {0x01a240041e611d42, 0x00240}, {0x0024582c24b07800, 0x02058},
		{0x2882120240a403a0, 0x00812}, {0x09108836082a4480, 0x0c701}, {0x4158490326004b38, 0x00d08},
		{0x8a042e1002100801, 0x12584}, {0x200400a282000d18, 0x0cd41}, {0x4044200a81000080, 0x00010},
		{0x1803a8260820244c, 0x0e021}, {0x02044a021728a060, 0x000c4}, {0x10c8144089000422, 0x04500},
		{0x1418a4c0020f0014, 0x0000c}, {0x812800610040d262, 0x0920a}, {0x1408182279198102, 0x00002},
		{0x05c024410600042a, 0x01d04}, {0x0100200519800400, 0x0c810}, {0x4804020a08005000, 0x004dc},
		{0x181838a100270400, 0x088c4}, {0x084d840200280033, 0x00b41}, {0x2f100a00a0680144, 0x14206},
		{0x08060400b886b032, 0x00004}, {0xc002810601009210, 0x090a2}, {0x9088840085211098, 0x04208},
		{0x4005088280200040, 0x02198}, {0x0004800180080240, 0x0048a}, {0x0040024020211001, 0x05c48},
		{0xc27800440448000e, 0x00612}, {0x0023040684044242, 0x04ea4}, {0x03140b0a41c15020, 0x02800},
		{0x2052000821691c04, 0x01244}, {0x0821181020102010, 0x001a8}, {0x80216ad202402873, 0x01618},
		{0xa801840818001c41, 0x01340}, {0x030919084379a104, 0x18009}, {0x06c0012005461410, 0x03029},
		{0x19201a0400884250, 0x11038}, {0x7a81240580808090, 0x04148}, {0x00272a9120200044, 0x10181},
		{0x29200b8018840806, 0x0a0b2}, {0x12c0b0151a780000, 0x00100}, {0x04800042e0255062, 0x080c1},
		{0x2c05303222004049, 0x00020}, {0x03a8150987200103, 0x04229}, {0x0487a6441441c111, 0x04044},
		{0x946526a05d0c0020, 0x08254}, {0x21010018c0083050, 0x01000}, {0x0002895a011a42d5, 0x01482},
		{0x00ca450220831451, 0x0011a}, {0x12c2b40259028024, 0x05140}, {0x40044f60421306c0, 0x07800},
		{0x040410718a88a620, 0x10962}, {0x2208010451411192, 0x10800}, {0x4100a8401010ca32, 0x18500},
		{0xc126026034090c06, 0x06042}, {0x4426407804241280, 0x08348}, {0x830420c804628080, 0x100b1},
	},
	Rook: [NumSquares]Bitboard{
		{0x0090000084008620, 0x02080}, {0x0042090004224102, 0x10110}, {0x010c020510111010, 0x19600},
		{0x008028120a16b50e, 0x11200}, {0x0042402500202000, 0x02004}, {0x000048a001204800, 0x0020c},
		{0x01912000a0003d22, 0x12020}, {0x0428881858420108, 0x03c00}, {0x021006204c118a00, 0x13b00},
		{0xb000010800808c01, 0x180a0}, {0x1a012080008002c0, 0x00000}, {0x280104420008c230, 0x00f08},
		{0x0058180288201810, 0x041a0}, {0x20005280d8042241, 0x18804}, {0x2600d32231020b11, 0x05818},
		{0x8000404009068008, 0x11489}, {0x8200055023400b00, 0x00242}, {0x1000202420308328, 0x1000c},
		{0x813c000600014012, 0x00809}, {0x4004304008aa2426, 0x00239}, {0x2132011120000800, 0x02107},
		{0x601005818e402080, 0x08020}, {0xa00800423a011c28, 0x00b08}, {0x402002450002101e, 0x14040},
		{0x00140028280860a0, 0x10002}, {0xc680008202240808, 0x0cc0b}, {0x00042c4795c00600, 0x04050},
		{0x105c080002092200, 0x00401}, {0x087c008589050000, 0x0602a}, {0x610802001020c020, 0x00005},
		{0x0c04020000800544, 0x03015}, {0x0140890000881280, 0x1aa99}, {0x010c10004808a80a, 0x00810},
		{0x0a8040000a405909, 0x18400}, {0x4880f100a1111201, 0x00220}, {0x00900401c40d0201, 0x09011},
		{0x000c006a00002044, 0x10140}, {0x3041584b00005081, 0x18600}, {0x0330840e00110208, 0x0e004},
		{0x4102000042a30c44, 0x00000}, {0x0188240200a0308c, 0x1041e}, {0x0644011000f40001, 0x08820},
		{0x000220a000172122, 0x02245}, {0x0c1d00840058a029, 0x04404}, {0x6188a0a00019e194, 0x18435},
		{0x9000020d02802020, 0x192a0}, {0x8208013101800280, 0x01128}, {0x6c0158091100000a, 0x0d7ed},
		{0x4c00080202000e04, 0x18064}, {0x0405000120400a02, 0x00888}, {0x3200c8480160000c, 0x00120},
		{0x1cc250802a001322, 0x01cb1}, {0x06248a8022261011, 0x15310}, {0x6448470042000300, 0x028a2},
		{0xe020a2400844c001, 0x02224}, {0xa2a0102480047000, 0x01568}, {0x1d00024101721014, 0x09380},
		{0x6940400050584a00, 0x00012}, {0x10d1801c00500041, 0x06230}, {0x0020900040001081, 0x0040b},
		{0x0500181020402800, 0x10180}, {0x0408801805888490, 0x0030c}, {0x31900a4891040002, 0x08061},
		{0x02a6600100080120, 0x01020}, {0x0032084481451042, 0x00011}, {0x51180001018e8420, 0x04100},
		{0x1c81100822800100, 0x0eb86}, {0x8054800183004050, 0x00840}, {0x0026012800440060, 0x121c4},
		{0x3aa0880014001c20, 0x083b8}, {0x935a827213200400, 0x0a582}, {0x2c90cc23a4100400, 0x08020},
		{0x000c030c13021202, 0x0040d}, {0x4a802505020200c2, 0x1e010}, {0x82800928b4026006, 0x01210},
		{0x041140090200044a, 0x09108}, {0xc404400108208986, 0x00600}, {0x000042218a104312, 0x0806d},
		{0x1541400290021782, 0x04624}, {0x0221410026300447, 0x00008}, {0x149c684024208202, 0x08e02},
	},
}
