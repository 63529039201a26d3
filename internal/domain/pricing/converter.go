package pricing

// Converter switches a price between net and gross at a single tax rate.
// Results are rounded half-up to whole pesos.
type Converter struct {
	rate TaxRate
}

func NewConverter(rate TaxRate) *Converter {
	return &Converter{rate: rate}
}

func (c *Converter) Rate() TaxRate { return c.rate }

func (c *Converter) GrossFromNet(net Money) Money {
	if net <= 0 {
		return 0
	}
	return NewMoney(net.Decimal().Mul(c.rate.Factor()).Round(0).IntPart())
}

func (c *Converter) NetFromGross(gross Money) Money {
	if gross <= 0 {
		return 0
	}
	return NewMoney(gross.Decimal().DivRound(c.rate.Factor(), 0).IntPart())
}
