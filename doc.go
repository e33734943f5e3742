/*
Package lz8s implements LZ8S, a parameterised LZ77-family byte-stream codec
aimed at retrocomputing and embedded decoders: the wire format carries no
header, magic, or checksum, so the decoder is a direct, trivial inversion of
the encoder's output given the same parameters.

The codec alternates LITERAL and MATCH records (see Params and the wire
format notes in emitter.go / decoder.go). Encoding is done by
an optimal parser: a backward dynamic-programming sweep computes, for every
input position, the cheapest way to continue the stream from there, then a
forward pass emits the chosen records.

# Encode

	res, err := lz8s.Encode(data, lz8s.DefaultParams())
	out := res.Data

# Decode

	out, err := lz8s.Decode(compressed, lz8s.DefaultParams())

Both ends must agree on Params; there is no self-description in the stream.
*/
package lz8s
