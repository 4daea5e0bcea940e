/*
Package structcodec packs and unpacks plain records to and from a byte stream.

A record describes its serializable surface with an explicit field table:

	type Header struct {
		Magic   string
		Version int16
		Flags   []byte
		Payload *Payload
	}

	func (h *Header) Fields() []structcodec.Field {
		return []structcodec.Field{
			{Meta: structcodec.Meta{Name: "magic", Limit: 4}, Value: structcodec.String(&h.Magic)},
			{Meta: structcodec.Meta{Name: "version", Index: 1}, Value: structcodec.Int16(&h.Version)},
			{Meta: structcodec.Meta{Name: "flags", Index: 2, Skip: 2}, Value: structcodec.Bytes(&h.Flags)},
			{Meta: structcodec.Meta{Name: "payload", Index: 3}, Value: structcodec.Nested(&h.Payload, NewPayload)},
		}
	}

Fields are written in ascending Index order, fields with equal indexes keep their table order.
Every field is preceded by Skip zero bytes. Scalars have a fixed width, strings are either
NUL terminated or, when Limit is positive, exactly Limit bytes wide. Slices are written as the
concatenation of their elements without any length prefix, so they must be allocated with the
right length before Unpack. Nested records are written inline.

Fixed size Go arrays can be bound through a slice sharing their storage:

	s := r.Samples[:]
	structcodec.Slice(&s, structcodec.Float32)
*/
package structcodec
