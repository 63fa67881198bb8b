package scan

import (
	"fmt"

	"fortio.org/safecast"

	"intcalc/internal/source"
)

// Cursor представляет собой позицию в нормализованном тексте выражения.
type Cursor struct {
	text string
	off  uint32
	// limit is the exclusive upper bound for off.
	limit uint32
}

// NewCursor creates a cursor over the normalized form of expr.
func NewCursor(expr source.Expression) Cursor {
	limit, err := safecast.Conv[uint32](len(expr.Normalized))
	if err != nil {
		panic(fmt.Errorf("expression length overflow: %w", err))
	}
	return Cursor{
		text:  expr.Normalized,
		off:   0,
		limit: limit,
	}
}

// EOF проверяет, достигнут ли конец выражения
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.text[c.off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.text[c.off]
	c.off++
	return b
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.off,
	}
}
