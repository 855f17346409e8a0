// Package npy implements the NPY single-array binary stream format.
//
// Stream structure:
//
//	[6 bytes:  Magic "\x93NUMPY"]
//	[2 bytes:  Version (major, minor)]
//	[2/4 bytes: Header text length (uint16 LE for v1, uint32 LE for v2)]
//	[Header text: ASCII dict literal, space-padded + '\n' so the whole
//	             prefix is a multiple of 16 bytes]
//	[Element data: count * width raw bytes in the declared byte order]
//
// The header text is a restricted Python dict literal with exactly three
// keys, for example:
//
//	{'descr': '<f8', 'fortran_order': True, 'shape': (2, 3,), }
//
// Readers accept both first-axis-fastest ('fortran_order': True) and
// last-axis-fastest payload layouts and both byte orders; writers always
// emit first-axis-fastest payloads in host byte order.
package npy
