package gadget

import "math/big"

// GasPrice carries the EIP-1559 fee offer of a transaction.
type GasPrice struct {
	FeeCap *big.Int `json:"feeCap"` // maximum total fee per gas
	TipCap *big.Int `json:"tipCap"` // maximum tip per gas on top of the base fee
}

func NewGasPrice(feeCap, tipCap *big.Int) *GasPrice {
	return &GasPrice{FeeCap: feeCap, TipCap: tipCap}
}

// EffectiveTip returns min(TipCap, FeeCap-baseFee), the tip actually paid
// under baseFee. The result is negative when the fee cap cannot cover the
// base fee. A nil baseFee means the full tip cap applies.
func (g *GasPrice) EffectiveTip(baseFee *big.Int) *big.Int {
	if baseFee == nil {
		return new(big.Int).Set(g.TipCap)
	}
	tip := new(big.Int).Sub(g.FeeCap, baseFee)
	if tip.Cmp(g.TipCap) > 0 {
		tip.Set(g.TipCap)
	}
	return tip
}
