package lz8s

// infiniteCost is a cost sentinel large enough that no finite chain of additions
// can reach it, yet finite enough that two such sentinels can still be added
// together via addCost without wrapping. Modelled on the source's INT_MAX/256 idiom.
const infiniteCost = int(^uint(0)>>1) / 256

// addCost sums two bit-costs, saturating at infiniteCost instead of overflowing.
// Parser code must use this (not raw +) whenever either operand might already
// be infiniteCost, per the §9 design note on cost sentinels.
func addCost(a, b int) int {
	if a >= infiniteCost || b >= infiniteCost {
		return infiniteCost
	}
	sum := a + b
	if sum >= infiniteCost {
		return infiniteCost
	}
	return sum
}

// costModel holds a Params value plus the derived quantities the parser and
// emitter need on every call: the window cap, the offset mask, and the cost
// of a single zero-length splice match, each computed once (§4.1).
type costModel struct {
	p             Params
	maxOff        int
	mask          int
	zeroMatchCost int
}

func newCostModel(p Params) *costModel {
	cm := &costModel{p: p, maxOff: p.maxOff(), mask: p.mask()}
	cm.zeroMatchCost = cm.mlenCost(0)
	if p.ZeroOffset {
		cm.zeroMatchCost = addCost(cm.zeroMatchCost, cm.moffCost(1))
	}
	return cm
}

// mlenCost returns the bit-cost of a match-length field encoding length l.
func (cm *costModel) mlenCost(l int) int {
	if l > cm.p.MaxMLen {
		return infiniteCost
	}
	if cm.p.MaxMLen > 255 && l > 127 {
		return 16
	}
	return 8
}

// moffCost returns the bit-cost of a match-offset field for back-distance o.
func (cm *costModel) moffCost(o int) int {
	if o < 1 || o > cm.maxOff {
		return infiniteCost
	}
	if cm.p.BitsMOff == 0 {
		return 0
	}
	if cm.p.BitsMOff <= 8 {
		return 8
	}
	return 16
}

// llenCost returns the bit-cost of encoding a literal run of length l,
// including the zero-length-match splices needed whenever l exceeds MaxLLen.
func (cm *costModel) llenCost(l int) int {
	if l == 0 {
		return 0
	}

	cost := 0
	for l > cm.p.MaxLLen {
		cost = addCost(cost, addCost(8, cm.zeroMatchCost))
		l -= cm.p.MaxLLen
	}

	if cm.p.MaxLLen > 255 && l > 127 {
		cost = addCost(cost, 8)
	}

	return addCost(cost, 8)
}
