package book

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders the rule book as HCL that LoadConfig reads back unchanged.
// Optional attributes left at their zero value are omitted.
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	if c.Thresholds != nil {
		body := root.AppendNewBlock("thresholds", nil).Body()
		setNumber(body, "auto_shove_max_stack", c.Thresholds.AutoShoveMaxStack)
		setNumber(body, "blind_defense_max_stack", c.Thresholds.BlindDefenseMaxStack)
	}

	for _, t := range c.Open {
		root.AppendNewline()
		body := root.AppendNewBlock("open", []string{t.Name}).Body()
		body.SetAttributeValue("min_stack", cty.NumberFloatVal(t.MinStack))
		setString(body, "same_as", t.SameAs)
		setNumber(body, "early_raise", t.EarlyRaise)
		setNumber(body, "late_raise", t.LateRaise)
		setNumber(body, "blind_raise", t.BlindRaise)
		setRanges(body, t.Ranges)
	}

	for _, t := range c.Shove {
		root.AppendNewline()
		body := root.AppendNewBlock("shove", []string{t.Name}).Body()
		setNumber(body, "max_stack", t.MaxStack)
		body.SetAttributeValue("ranges", rangesValue(t.Ranges))
	}

	for _, t := range c.ThreeBet {
		root.AppendNewline()
		body := root.AppendNewBlock("three_bet", []string{t.Name}).Body()
		body.SetAttributeValue("min_stack", cty.NumberFloatVal(t.MinStack))
		setString(body, "same_as", t.SameAs)
		if t.MostlyShove {
			body.SetAttributeValue("mostly_shove", cty.True)
		}
		setString(body, "shove", t.Shove)
		setString(body, "light_shove", t.LightShove)
		body.SetAttributeValue("sizing_ip", numberList(t.SizingIP))
		body.SetAttributeValue("sizing_oop", numberList(t.SizingOOP))
		for _, m := range t.Matchups {
			mb := body.AppendNewBlock("matchup", []string{m.Hero, m.Opener}).Body()
			setString(mb, "value", m.Value)
			setString(mb, "bluff", m.Bluff)
		}
	}

	for _, t := range c.BlindDefense {
		root.AppendNewline()
		body := root.AppendNewBlock("blind_defense", []string{t.Name}).Body()
		body.SetAttributeValue("max_stack", cty.NumberFloatVal(t.MaxStack))
		body.SetAttributeValue("call", cty.StringVal(t.Call))
	}

	return f.Bytes()
}

func setNumber(body *hclwrite.Body, name string, v float64) {
	if v != 0 {
		body.SetAttributeValue(name, cty.NumberFloatVal(v))
	}
}

func setString(body *hclwrite.Body, name, v string) {
	if v != "" {
		body.SetAttributeValue(name, cty.StringVal(v))
	}
}

func setRanges(body *hclwrite.Body, ranges map[string]string) {
	if len(ranges) > 0 {
		body.SetAttributeValue("ranges", rangesValue(ranges))
	}
}

func rangesValue(ranges map[string]string) cty.Value {
	if len(ranges) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	vals := make(map[string]cty.Value, len(ranges))
	for seat, notation := range ranges {
		vals[seat] = cty.StringVal(notation)
	}
	return cty.MapVal(vals)
}

func numberList(xs []float64) cty.Value {
	if len(xs) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	vals := make([]cty.Value, len(xs))
	for i, x := range xs {
		vals[i] = cty.NumberFloatVal(x)
	}
	return cty.ListVal(vals)
}
