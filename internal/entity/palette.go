package entity

import (
	"strings"

	"github.com/TwiN/go-color"
)

const (
	MinColors     = 3
	MaxColors     = 8
	DefaultColors = 6
)

// Symbol is one peg color, written as a single letter.
type Symbol rune

const (
	Red     Symbol = 'r'
	Grey    Symbol = 'G'
	Yellow  Symbol = 'y'
	Green   Symbol = 'g'
	Blue    Symbol = 'b'
	Magenta Symbol = 'm'
	Cyan    Symbol = 'c'
	White   Symbol = 'w'
)

// Alphabet is the fixed symbol order a palette is cut from.
var Alphabet = [MaxColors]Symbol{Red, Grey, Yellow, Green, Blue, Magenta, Cyan, White}

var colorMap = map[Symbol]string{
	Red:     color.Red,
	Grey:    color.Gray,
	Yellow:  color.Yellow,
	Green:   color.Green,
	Blue:    color.Blue,
	Magenta: color.Purple,
	Cyan:    color.Cyan,
	White:   color.White,
}

// ColorOf returns the symbol wrapped in its terminal color.
func ColorOf(symbol Symbol) string {
	code, ok := colorMap[symbol]
	if !ok {
		return string(symbol)
	}

	return color.Ize(code, string(symbol))
}

// Palette is the active subset of the alphabet available to secrets.
type Palette struct {
	symbols []Symbol
}

// NewPalette takes the first size symbols of the alphabet, clamping size into [MinColors, MaxColors].
func NewPalette(size int) Palette {
	size = max(MinColors, min(MaxColors, size))

	symbols := make([]Symbol, size)
	copy(symbols, Alphabet[:size])

	return Palette{symbols: symbols}
}

func (that Palette) Size() int {
	return len(that.symbols)
}

func (that Palette) Symbols() []Symbol {
	symbols := make([]Symbol, len(that.symbols))
	copy(symbols, that.symbols)

	return symbols
}

func (that Palette) At(i int) Symbol {
	return that.symbols[i]
}

func (that Palette) Contains(symbol Symbol) bool {
	for _, s := range that.symbols {
		if s == symbol {
			return true
		}
	}

	return false
}

func (that Palette) String() string {
	parts := make([]string, len(that.symbols))
	for i, s := range that.symbols {
		parts[i] = string(s)
	}

	return strings.Join(parts, ", ")
}
