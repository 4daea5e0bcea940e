package structcodec

type example struct {
	aBoolean bool
	aByte    byte
	aChar    uint16
	aShort   int16
	anInt    int32
	aLong    int64
	aFloat   float32
	aDouble  float64
	string   string
}

func newExample() *example {
	return &example{
		aByte:   1,
		aChar:   2,
		aShort:  3,
		anInt:   4,
		aLong:   5,
		aFloat:  6,
		aDouble: 7,
		string:  "\u0008",
	}
}

func (e *example) Fields() []Field {
	return []Field{
		{Meta: Meta{Name: "aBoolean"}, Value: Bool(&e.aBoolean)},
		{Meta: Meta{Name: "aByte"}, Value: Byte(&e.aByte)},
		{Meta: Meta{Name: "aChar"}, Value: Char(&e.aChar)},
		{Meta: Meta{Name: "aShort"}, Value: Int16(&e.aShort)},
		{Meta: Meta{Name: "anInt"}, Value: Int32(&e.anInt)},
		{Meta: Meta{Name: "aLong"}, Value: Int64(&e.aLong)},
		{Meta: Meta{Name: "aFloat"}, Value: Float32(&e.aFloat)},
		{Meta: Meta{Name: "aDouble"}, Value: Float64(&e.aDouble)},
		{Meta: Meta{Name: "string", Index: -1, Limit: 1}, Value: String(&e.string)},
	}
}

type wrapper struct {
	buf []byte
}

func (w *wrapper) Fields() []Field {
	return []Field{{Value: Slice(&w.buf, Byte)}}
}

type point struct {
	X, Y int32
}

func newPoint() *point {
	return &point{X: -1, Y: -1}
}

func (p *point) Fields() []Field {
	return []Field{
		{Meta: Meta{Name: "x"}, Value: Int32(&p.X)},
		{Meta: Meta{Name: "y", Index: 1}, Value: Int32(&p.Y)},
	}
}

type label struct {
	Text string
}

func (l *label) Fields() []Field {
	return []Field{{Meta: Meta{Name: "text"}, Value: String(&l.Text)}}
}

type shape struct {
	Name   string
	Tag    string
	Origin *point
	Points []*point
	Grid   [][]int16
	Labels []string
	Data   []byte
	Flag   bool
	Ratio  float64
	Code   uint16
	Small  int8
	Wide   int64
}

func newShape(points, rows, cols, labels, data int) *shape {
	s := &shape{
		Points: make([]*point, points),
		Grid:   make([][]int16, rows),
		Labels: make([]string, labels),
		Data:   make([]byte, data),
	}
	for i := range s.Grid {
		s.Grid[i] = make([]int16, cols)
	}
	return s
}

func (s *shape) Fields() []Field {
	return []Field{
		{Meta: Meta{Name: "name", Index: 10}, Value: String(&s.Name)},
		{Meta: Meta{Name: "tag", Index: 1, Limit: 4, Skip: 2}, Value: String(&s.Tag)},
		{Meta: Meta{Name: "origin", Index: 2}, Value: Nested(&s.Origin, newPoint)},
		{Meta: Meta{Name: "points", Index: 3}, Value: Slice(&s.Points, NestedOf(newPoint))},
		{Meta: Meta{Name: "grid", Index: 4, Skip: 1}, Value: Slice(&s.Grid, SliceOf(Int16))},
		{Meta: Meta{Name: "labels", Index: 5, Limit: 3}, Value: Slice(&s.Labels, String)},
		{Meta: Meta{Name: "data", Index: 6}, Value: Bytes(&s.Data)},
		{Meta: Meta{Name: "flag", Index: 7}, Value: Bool(&s.Flag)},
		{Meta: Meta{Name: "ratio", Index: 8}, Value: Float64(&s.Ratio)},
		{Meta: Meta{Name: "code", Index: 9}, Value: Char(&s.Code)},
		{Meta: Meta{Name: "small", Index: 0}, Value: Int8(&s.Small)},
		{Meta: Meta{Name: "wide", Index: 9, Reverse: true}, Value: Int64(&s.Wide)},
	}
}

type optional struct {
	Head  byte
	Extra []int32
	Tail  byte
}

func (o *optional) Fields() []Field {
	return []Field{
		{Meta: Meta{Name: "head"}, Value: Byte(&o.Head)},
		{Meta: Meta{Name: "extra", Index: 1, Skip: 3, Nullable: true}, Value: Slice(&o.Extra, Int32)},
		{Meta: Meta{Name: "tail", Index: 2}, Value: Byte(&o.Tail)},
	}
}

type container struct {
	Pos   *point
	Label *label
}

func (c *container) Fields() []Field {
	return []Field{
		{Meta: Meta{Name: "pos"}, Value: Nested(&c.Pos, nil)},
		{Meta: Meta{Name: "label", Index: 1}, Value: Nested(&c.Label, nil)},
	}
}
