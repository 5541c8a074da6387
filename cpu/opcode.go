package cpu

// Opcode is the 16-bit operation code of an instruction.
type Opcode uint16

// Shape is the operand layout of an opcode.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_EMPTY   = Shape(0)  // empty
	SHAPE_R1I32   = Shape(1)  // r1i32
	SHAPE_R1I32P  = Shape(2)  // r1i32p
	SHAPE_R1I32N  = Shape(3)  // r1i32n
	SHAPE_R1I8X4  = Shape(4)  // r1i8x4
	SHAPE_R1I16X2 = Shape(5)  // r1i16x2
	SHAPE_S1I32   = Shape(6)  // s1i32
	SHAPE_R2I32   = Shape(7)  // r2i32
	SHAPE_R3S2    = Shape(8)  // r3s2
	SHAPE_R3M2S1  = Shape(9)  // r3m2s1
	SHAPE_S3      = Shape(10) // s3
	SHAPE_R4SIGN  = Shape(11) // r4sign
	SHAPE_R6      = Shape(12) // r6
)

// Opcodes. Families are laid out by lane width in the order
// fs, fd, dq, qq, b, w, d, q.
//
//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_STOP    = Opcode(0x000) // stop
	OP_SET     = Opcode(0x001) // set
	OP_MMOVB   = Opcode(0x002) // mmovb
	OP_MSWAPB  = Opcode(0x003) // mswapb
	OP_LD      = Opcode(0x004) // ld
	OP_ST      = Opcode(0x005) // st
	OP_LDR     = Opcode(0x006) // ldr
	OP_STR     = Opcode(0x007) // str
	OP_CMOVB   = Opcode(0x008) // cmovb
	OP_CMOVW   = Opcode(0x009) // cmovw
	OP_CMOVD   = Opcode(0x00a) // cmovd
	OP_CMOVQ   = Opcode(0x00b) // cmovq
	OP_CMOVZB  = Opcode(0x00c) // cmovzb
	OP_CMOVZW  = Opcode(0x00d) // cmovzw
	OP_CMOVZD  = Opcode(0x00e) // cmovzd
	OP_CMOVZQ  = Opcode(0x00f) // cmovzq
	OP_ADDFS   = Opcode(0x010) // addfs
	OP_ADDFD   = Opcode(0x011) // addfd
	OP_ADDB    = Opcode(0x014) // addb
	OP_ADDW    = Opcode(0x015) // addw
	OP_ADDD    = Opcode(0x016) // addd
	OP_ADDQ    = Opcode(0x017) // addq
	OP_ADDFSI  = Opcode(0x018) // addfsi
	OP_ADDFDI  = Opcode(0x019) // addfdi
	OP_ADDBI   = Opcode(0x01a) // addbi
	OP_ADDWI   = Opcode(0x01b) // addwi
	OP_ADDDI   = Opcode(0x01c) // adddi
	OP_ADDQIP  = Opcode(0x01d) // addqip
	OP_ADDQIN  = Opcode(0x01e) // addqin
	OP_SUBFS   = Opcode(0x020) // subfs
	OP_SUBFD   = Opcode(0x021) // subfd
	OP_SUBB    = Opcode(0x024) // subb
	OP_SUBW    = Opcode(0x025) // subw
	OP_SUBD    = Opcode(0x026) // subd
	OP_SUBQ    = Opcode(0x027) // subq
	OP_JNZFS   = Opcode(0x028) // jnzfs
	OP_JNZFD   = Opcode(0x029) // jnzfd
	OP_JNZB    = Opcode(0x02c) // jnzb
	OP_JNZW    = Opcode(0x02d) // jnzw
	OP_JNZD    = Opcode(0x02e) // jnzd
	OP_JNZQ    = Opcode(0x02f) // jnzq
	OP_MULFS   = Opcode(0x030) // mulfs
	OP_MULFD   = Opcode(0x031) // mulfd
	OP_MULB    = Opcode(0x034) // mulb
	OP_MULW    = Opcode(0x035) // mulw
	OP_MULD    = Opcode(0x036) // muld
	OP_MULQ    = Opcode(0x037) // mulq
	OP_JZFS    = Opcode(0x038) // jzfs
	OP_JZFD    = Opcode(0x039) // jzfd
	OP_JZB     = Opcode(0x03c) // jzb
	OP_JZW     = Opcode(0x03d) // jzw
	OP_JZD     = Opcode(0x03e) // jzd
	OP_JZQ     = Opcode(0x03f) // jzq
	OP_FMAFS   = Opcode(0x040) // fmafs
	OP_FMAFD   = Opcode(0x041) // fmafd
	OP_FMAB    = Opcode(0x044) // fmab
	OP_FMAW    = Opcode(0x045) // fmaw
	OP_FMAD    = Opcode(0x046) // fmad
	OP_FMAQ    = Opcode(0x047) // fmaq
	OP_CALL    = Opcode(0x048) // call
	OP_RET     = Opcode(0x04c) // ret
	OP_ANDFS   = Opcode(0x050) // andfs
	OP_ANDFD   = Opcode(0x051) // andfd
	OP_ANDDQ   = Opcode(0x052) // anddq
	OP_ANDQQ   = Opcode(0x053) // andqq
	OP_ANDB    = Opcode(0x054) // andb
	OP_ANDW    = Opcode(0x055) // andw
	OP_ANDD    = Opcode(0x056) // andd
	OP_ANDQ    = Opcode(0x057) // andq
	OP_PUSHD   = Opcode(0x05a) // pushd
	OP_PUSHQ   = Opcode(0x05b) // pushq
	OP_PUSHDQ  = Opcode(0x05c) // pushdq
	OP_PUSHQQ  = Opcode(0x05d) // pushqq
	OP_ORFS    = Opcode(0x060) // orfs
	OP_ORFD    = Opcode(0x061) // orfd
	OP_ORDQ    = Opcode(0x062) // ordq
	OP_ORQQ    = Opcode(0x063) // orqq
	OP_ORB     = Opcode(0x064) // orb
	OP_ORW     = Opcode(0x065) // orw
	OP_ORD     = Opcode(0x066) // ord
	OP_ORQ     = Opcode(0x067) // orq
	OP_POPD    = Opcode(0x06a) // popd
	OP_POPQ    = Opcode(0x06b) // popq
	OP_POPDQ   = Opcode(0x06c) // popdq
	OP_POPQQ   = Opcode(0x06d) // popqq
	OP_XORFS   = Opcode(0x070) // xorfs
	OP_XORFD   = Opcode(0x071) // xorfd
	OP_XORDQ   = Opcode(0x072) // xordq
	OP_XORQQ   = Opcode(0x073) // xorqq
	OP_XORB    = Opcode(0x074) // xorb
	OP_XORW    = Opcode(0x075) // xorw
	OP_XORD    = Opcode(0x076) // xord
	OP_XORQ    = Opcode(0x077) // xorq
	OP_SHUFB   = Opcode(0x080) // shufb
	OP_SHUFBX  = Opcode(0x081) // shufbx
	OP_UNPKFS  = Opcode(0x090) // unpkfs
	OP_UNPKFD  = Opcode(0x091) // unpkfd
	OP_UNPKDQ  = Opcode(0x092) // unpkdq
	OP_UNPKB   = Opcode(0x094) // unpkb
	OP_UNPKW   = Opcode(0x095) // unpkw
	OP_UNPKD   = Opcode(0x096) // unpkd
	OP_UNPKQ   = Opcode(0x097) // unpkq
	OP_PACKLFS = Opcode(0x0a0) // packlfs
	OP_PACKLFD = Opcode(0x0a1) // packlfd
	OP_PACKLDQ = Opcode(0x0a2) // packldq
	OP_PACKLB  = Opcode(0x0a4) // packlb
	OP_PACKLW  = Opcode(0x0a5) // packlw
	OP_PACKLD  = Opcode(0x0a6) // packld
	OP_PACKLQ  = Opcode(0x0a7) // packlq
	OP_PACKHFS = Opcode(0x0a8) // packhfs
	OP_PACKHFD = Opcode(0x0a9) // packhfd
	OP_PACKHDQ = Opcode(0x0aa) // packhdq
	OP_PACKHB  = Opcode(0x0ac) // packhb
	OP_PACKHW  = Opcode(0x0ad) // packhw
	OP_PACKHD  = Opcode(0x0ae) // packhd
	OP_PACKHQ  = Opcode(0x0af) // packhq
	OP_DIVFS   = Opcode(0x0b0) // divfs
	OP_DIVFD   = Opcode(0x0b1) // divfd
	OP_DIVSB   = Opcode(0x0b4) // divsb
	OP_DIVSW   = Opcode(0x0b5) // divsw
	OP_DIVSD   = Opcode(0x0b6) // divsd
	OP_DIVSQ   = Opcode(0x0b7) // divsq
	OP_DIVUB   = Opcode(0x0bc) // divub
	OP_DIVUW   = Opcode(0x0bd) // divuw
	OP_DIVUD   = Opcode(0x0be) // divud
	OP_DIVUQ   = Opcode(0x0bf) // divuq
	OP_RLFS    = Opcode(0x0c0) // rlfs
	OP_RLFD    = Opcode(0x0c1) // rlfd
	OP_RLDQ    = Opcode(0x0c2) // rldq
	OP_RLQQ    = Opcode(0x0c3) // rlqq
	OP_RLB     = Opcode(0x0c4) // rlb
	OP_RLW     = Opcode(0x0c5) // rlw
	OP_RLD     = Opcode(0x0c6) // rld
	OP_RLQ     = Opcode(0x0c7) // rlq
	OP_SLLFS   = Opcode(0x0d0) // sllfs
	OP_SLLFD   = Opcode(0x0d1) // sllfd
	OP_SLLDQ   = Opcode(0x0d2) // slldq
	OP_SLLQQ   = Opcode(0x0d3) // sllqq
	OP_SLLB    = Opcode(0x0d4) // sllb
	OP_SLLW    = Opcode(0x0d5) // sllw
	OP_SLLD    = Opcode(0x0d6) // slld
	OP_SLLQ    = Opcode(0x0d7) // sllq
	OP_SARFS   = Opcode(0x0e0) // sarfs
	OP_SARFD   = Opcode(0x0e1) // sarfd
	OP_SARDQ   = Opcode(0x0e2) // sardq
	OP_SARQQ   = Opcode(0x0e3) // sarqq
	OP_SARB    = Opcode(0x0e4) // sarb
	OP_SARW    = Opcode(0x0e5) // sarw
	OP_SARD    = Opcode(0x0e6) // sard
	OP_SARQ    = Opcode(0x0e7) // sarq
	OP_SLRFS   = Opcode(0x0f0) // slrfs
	OP_SLRFD   = Opcode(0x0f1) // slrfd
	OP_SLRDQ   = Opcode(0x0f2) // slrdq
	OP_SLRQQ   = Opcode(0x0f3) // slrqq
	OP_SLRB    = Opcode(0x0f4) // slrb
	OP_SLRW    = Opcode(0x0f5) // slrw
	OP_SLRD    = Opcode(0x0f6) // slrd
	OP_SLRQ    = Opcode(0x0f7) // slrq
	OP_CMPEQFS = Opcode(0x100) // cmpeqfs
	OP_CMPEQFD = Opcode(0x101) // cmpeqfd
	OP_CMPEQB  = Opcode(0x104) // cmpeqb
	OP_CMPEQW  = Opcode(0x105) // cmpeqw
	OP_CMPEQD  = Opcode(0x106) // cmpeqd
	OP_CMPEQQ  = Opcode(0x107) // cmpeqq
	OP_CMPGTFS = Opcode(0x108) // cmpgtfs
	OP_CMPGTFD = Opcode(0x109) // cmpgtfd
	OP_CMPGTSB = Opcode(0x10c) // cmpgtsb
	OP_CMPGTSW = Opcode(0x10d) // cmpgtsw
	OP_CMPGTSD = Opcode(0x10e) // cmpgtsd
	OP_CMPGTSQ = Opcode(0x10f) // cmpgtsq
	OP_CMPGTUB = Opcode(0x114) // cmpgtub
	OP_CMPGTUW = Opcode(0x115) // cmpgtuw
	OP_CMPGTUD = Opcode(0x116) // cmpgtud
	OP_CMPGTUQ = Opcode(0x117) // cmpgtuq
	OP_MINFS   = Opcode(0x118) // minfs
	OP_MINFD   = Opcode(0x119) // minfd
	OP_MINSB   = Opcode(0x11c) // minsb
	OP_MINSW   = Opcode(0x11d) // minsw
	OP_MINSD   = Opcode(0x11e) // minsd
	OP_MINSQ   = Opcode(0x11f) // minsq
	OP_MAXFS   = Opcode(0x120) // maxfs
	OP_MAXFD   = Opcode(0x121) // maxfd
	OP_MAXSB   = Opcode(0x124) // maxsb
	OP_MAXSW   = Opcode(0x125) // maxsw
	OP_MAXSD   = Opcode(0x126) // maxsd
	OP_MAXSQ   = Opcode(0x127) // maxsq
	OP_MINUB   = Opcode(0x128) // minub
	OP_MINUW   = Opcode(0x129) // minuw
	OP_MINUD   = Opcode(0x12a) // minud
	OP_MINUQ   = Opcode(0x12b) // minuq
	OP_MAXUB   = Opcode(0x12c) // maxub
	OP_MAXUW   = Opcode(0x12d) // maxuw
	OP_MAXUD   = Opcode(0x12e) // maxud
	OP_MAXUQ   = Opcode(0x12f) // maxuq
	OP_HADDFS  = Opcode(0x130) // haddfs
	OP_HADDFD  = Opcode(0x131) // haddfd
	OP_HADDB   = Opcode(0x134) // haddb
	OP_HADDW   = Opcode(0x135) // haddw
	OP_HADDD   = Opcode(0x136) // haddd
	OP_HADDQ   = Opcode(0x137) // haddq
	OP_HSUBFS  = Opcode(0x138) // hsubfs
	OP_HSUBFD  = Opcode(0x139) // hsubfd
	OP_HSUBB   = Opcode(0x13c) // hsubb
	OP_HSUBW   = Opcode(0x13d) // hsubw
	OP_HSUBD   = Opcode(0x13e) // hsubd
	OP_HSUBQ   = Opcode(0x13f) // hsubq
	OP_MULHSB  = Opcode(0x144) // mulhsb
	OP_MULHSW  = Opcode(0x145) // mulhsw
	OP_MULHSD  = Opcode(0x146) // mulhsd
	OP_MULHSQ  = Opcode(0x147) // mulhsq
	OP_MULHUB  = Opcode(0x14c) // mulhub
	OP_MULHUW  = Opcode(0x14d) // mulhuw
	OP_MULHUD  = Opcode(0x14e) // mulhud
	OP_MULHUQ  = Opcode(0x14f) // mulhuq
	OP_SELFS   = Opcode(0x150) // selfs
	OP_SELFD   = Opcode(0x151) // selfd
	OP_SELB    = Opcode(0x154) // selb
	OP_SELW    = Opcode(0x155) // selw
	OP_SELD    = Opcode(0x156) // seld
	OP_SELQ    = Opcode(0x157) // selq
	OP_NOP     = Opcode(0x15f) // nop
)
