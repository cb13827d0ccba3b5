package event

// Wire fixtures captured from a live network: a dag-cbor anchor envelope,
// its proof block, and a dag-cbor capability block.

var anchorEnvelopeFixture = []byte{
	0xa4, 0x62, 0x69, 0x64, 0xd8, 0x2a, 0x58, 0x26, 0x00, 0x01, 0x85, 0x01, 0x12, 0x20, 0xfe, 0xe4,
	0x61, 0xb2, 0x98, 0xcb, 0x54, 0xfc, 0x09, 0xb1, 0x54, 0x94, 0xad, 0x6b, 0x4b, 0xfc, 0x29, 0xe6,
	0x11, 0xb5, 0x8d, 0xf4, 0xb1, 0xe0, 0x8d, 0x4d, 0xc6, 0xc9, 0x0c, 0x01, 0x8d, 0x3d, 0x64, 0x70,
	0x61, 0x74, 0x68, 0x71, 0x30, 0x2f, 0x30, 0x2f, 0x30, 0x2f, 0x31, 0x2f, 0x30, 0x2f, 0x30, 0x2f,
	0x30, 0x2f, 0x30, 0x2f, 0x31, 0x64, 0x70, 0x72, 0x65, 0x76, 0xd8, 0x2a, 0x58, 0x26, 0x00, 0x01,
	0x85, 0x01, 0x12, 0x20, 0x2c, 0x43, 0x4a, 0x87, 0x5d, 0xd3, 0xa3, 0x33, 0x5a, 0xc3, 0x79, 0x21,
	0x46, 0xf9, 0x1b, 0x0b, 0x7d, 0xf8, 0x5d, 0x07, 0x72, 0xc2, 0x52, 0xe9, 0x11, 0x64, 0x0d, 0x07,
	0xf8, 0x2c, 0x9d, 0xe9, 0x65, 0x70, 0x72, 0x6f, 0x6f, 0x66, 0xd8, 0x2a, 0x58, 0x25, 0x00, 0x01,
	0x71, 0x12, 0x20, 0x73, 0x1b, 0xc4, 0x96, 0xae, 0x6b, 0xf9, 0x1b, 0x2b, 0x4d, 0xfc, 0x97, 0x2e,
	0x19, 0x58, 0x81, 0xee, 0x5a, 0x3a, 0xe5, 0x07, 0x46, 0x05, 0x95, 0xee, 0x7e, 0x7b, 0xe1, 0x50,
	0x88, 0xc9, 0x7d,
}

var anchorProofFixture = []byte{
	0xa4, 0x64, 0x72, 0x6f, 0x6f, 0x74, 0xd8, 0x2a, 0x58, 0x25, 0x00, 0x01, 0x71, 0x12, 0x20, 0xcf,
	0xa8, 0x52, 0x92, 0x15, 0xb6, 0xdf, 0x19, 0x42, 0xc8, 0xfe, 0x40, 0x01, 0x22, 0x66, 0x11, 0xfd,
	0xcb, 0x3f, 0x73, 0xd4, 0xdf, 0xe9, 0x4e, 0x82, 0xa5, 0x0b, 0x75, 0xe9, 0xf7, 0x7f, 0xaa, 0x66,
	0x74, 0x78, 0x48, 0x61, 0x73, 0x68, 0xd8, 0x2a, 0x58, 0x26, 0x00, 0x01, 0x93, 0x01, 0x1b, 0x20,
	0x8d, 0x1b, 0x10, 0x8d, 0x80, 0xbb, 0x8b, 0xa5, 0x0a, 0x85, 0x8e, 0x1c, 0x0c, 0xd8, 0xa2, 0xdf,
	0xb2, 0x75, 0xcd, 0x90, 0xe1, 0x69, 0xfd, 0xb7, 0x82, 0x62, 0xf1, 0x30, 0xfd, 0x53, 0xd4, 0xd4,
	0x66, 0x74, 0x78, 0x54, 0x79, 0x70, 0x65, 0x6a, 0x66, 0x28, 0x62, 0x79, 0x74, 0x65, 0x73, 0x33,
	0x32, 0x29, 0x67, 0x63, 0x68, 0x61, 0x69, 0x6e, 0x49, 0x64, 0x68, 0x65, 0x69, 0x70, 0x31, 0x35,
	0x35, 0x3a, 0x31,
}

var cacaoBlockFixture = []byte{
	0xa3, 0x61, 0x68, 0xa1, 0x61, 0x74, 0x67, 0x65, 0x69, 0x70, 0x34, 0x33, 0x36, 0x31, 0x61, 0x70,
	0xa9, 0x63, 0x61, 0x75, 0x64, 0x78, 0x38, 0x64, 0x69, 0x64, 0x3a, 0x6b, 0x65, 0x79, 0x3a, 0x7a,
	0x36, 0x4d, 0x6b, 0x74, 0x44, 0x56, 0x44, 0x55, 0x68, 0x45, 0x61, 0x75, 0x4c, 0x62, 0x45, 0x45,
	0x5a, 0x4d, 0x53, 0x41, 0x74, 0x52, 0x31, 0x37, 0x37, 0x64, 0x44, 0x79, 0x63, 0x64, 0x6f, 0x7a,
	0x63, 0x78, 0x52, 0x66, 0x77, 0x50, 0x71, 0x54, 0x32, 0x6a, 0x51, 0x56, 0x4a, 0x55, 0x37, 0x63,
	0x65, 0x78, 0x70, 0x78, 0x18, 0x32, 0x30, 0x32, 0x33, 0x2d, 0x31, 0x30, 0x2d, 0x31, 0x34, 0x54,
	0x30, 0x37, 0x3a, 0x32, 0x39, 0x3a, 0x32, 0x33, 0x2e, 0x31, 0x30, 0x32, 0x5a, 0x63, 0x69, 0x61,
	0x74, 0x78, 0x18, 0x32, 0x30, 0x32, 0x33, 0x2d, 0x31, 0x30, 0x2d, 0x30, 0x37, 0x54, 0x30, 0x37,
	0x3a, 0x32, 0x39, 0x3a, 0x32, 0x33, 0x2e, 0x31, 0x30, 0x32, 0x5a, 0x63, 0x69, 0x73, 0x73, 0x78,
	0x3b, 0x64, 0x69, 0x64, 0x3a, 0x70, 0x6b, 0x68, 0x3a, 0x65, 0x69, 0x70, 0x31, 0x35, 0x35, 0x3a,
	0x31, 0x3a, 0x30, 0x78, 0x35, 0x39, 0x31, 0x35, 0x65, 0x32, 0x39, 0x33, 0x38, 0x32, 0x33, 0x46,
	0x43, 0x61, 0x38, 0x34, 0x30, 0x63, 0x39, 0x33, 0x45, 0x44, 0x32, 0x45, 0x31, 0x45, 0x35, 0x42,
	0x34, 0x64, 0x66, 0x33, 0x32, 0x64, 0x36, 0x39, 0x39, 0x39, 0x39, 0x39, 0x65, 0x6e, 0x6f, 0x6e,
	0x63, 0x65, 0x6e, 0x44, 0x64, 0x6e, 0x37, 0x6c, 0x53, 0x63, 0x33, 0x76, 0x51, 0x54, 0x77, 0x71,
	0x76, 0x66, 0x64, 0x6f, 0x6d, 0x61, 0x69, 0x6e, 0x78, 0x20, 0x63, 0x65, 0x6b, 0x70, 0x66, 0x6e,
	0x6b, 0x6c, 0x63, 0x69, 0x66, 0x69, 0x6f, 0x6d, 0x67, 0x65, 0x6f, 0x67, 0x62, 0x6d, 0x6b, 0x6e,
	0x6e, 0x6d, 0x63, 0x67, 0x62, 0x6b, 0x64, 0x70, 0x69, 0x6d, 0x67, 0x76, 0x65, 0x72, 0x73, 0x69,
	0x6f, 0x6e, 0x61, 0x31, 0x69, 0x72, 0x65, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x73, 0x8a, 0x78,
	0x51, 0x63, 0x65, 0x72, 0x61, 0x6d, 0x69, 0x63, 0x3a, 0x2f, 0x2f, 0x2a, 0x3f, 0x6d, 0x6f, 0x64,
	0x65, 0x6c, 0x3d, 0x6b, 0x6a, 0x7a, 0x6c, 0x36, 0x68, 0x76, 0x66, 0x72, 0x62, 0x77, 0x36, 0x63,
	0x38, 0x73, 0x6f, 0x67, 0x63, 0x63, 0x34, 0x33, 0x38, 0x66, 0x67, 0x67, 0x73, 0x75, 0x6e, 0x79,
	0x62, 0x75, 0x71, 0x36, 0x71, 0x39, 0x65, 0x63, 0x78, 0x6f, 0x61, 0x6f, 0x7a, 0x63, 0x78, 0x65,
	0x38, 0x71, 0x6c, 0x6a, 0x6b, 0x38, 0x77, 0x75, 0x33, 0x75, 0x71, 0x75, 0x33, 0x39, 0x34, 0x75,
	0x78, 0x37, 0x78, 0x51, 0x63, 0x65, 0x72, 0x61, 0x6d, 0x69, 0x63, 0x3a, 0x2f, 0x2f, 0x2a, 0x3f,
	0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x3d, 0x6b, 0x6a, 0x7a, 0x6c, 0x36, 0x68, 0x76, 0x66, 0x72, 0x62,
	0x77, 0x36, 0x63, 0x61, 0x74, 0x65, 0x6b, 0x33, 0x36, 0x68, 0x33, 0x70, 0x65, 0x70, 0x30, 0x39,
	0x6b, 0x39, 0x67, 0x79, 0x6d, 0x66, 0x6e, 0x6c, 0x61, 0x39, 0x6b, 0x36, 0x6f, 0x6a, 0x6c, 0x67,
	0x72, 0x6d, 0x77, 0x6a, 0x6f, 0x67, 0x76, 0x6a, 0x71, 0x67, 0x38, 0x71, 0x33, 0x7a, 0x70, 0x79,
	0x62, 0x6c, 0x31, 0x79, 0x75, 0x78, 0x51, 0x63, 0x65, 0x72, 0x61, 0x6d, 0x69, 0x63, 0x3a, 0x2f,
	0x2f, 0x2a, 0x3f, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x3d, 0x6b, 0x6a, 0x7a, 0x6c, 0x36, 0x68, 0x76,
	0x66, 0x72, 0x62, 0x77, 0x36, 0x63, 0x37, 0x78, 0x6c, 0x74, 0x68, 0x7a, 0x78, 0x39, 0x64, 0x69,
	0x79, 0x36, 0x6b, 0x33, 0x72, 0x33, 0x73, 0x30, 0x78, 0x61, 0x66, 0x38, 0x68, 0x37, 0x34, 0x6e,
	0x67, 0x78, 0x68, 0x6e, 0x63, 0x67, 0x6a, 0x77, 0x79, 0x65, 0x70, 0x6c, 0x35, 0x38, 0x70, 0x6b,
	0x61, 0x31, 0x35, 0x78, 0x39, 0x79, 0x68, 0x63, 0x78, 0x51, 0x63, 0x65, 0x72, 0x61, 0x6d, 0x69,
	0x63, 0x3a, 0x2f, 0x2f, 0x2a, 0x3f, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x3d, 0x6b, 0x6a, 0x7a, 0x6c,
	0x36, 0x68, 0x76, 0x66, 0x72, 0x62, 0x77, 0x36, 0x63, 0x38, 0x36, 0x31, 0x63, 0x7a, 0x76, 0x64,
	0x73, 0x6c, 0x65, 0x64, 0x33, 0x79, 0x6c, 0x73, 0x61, 0x39, 0x39, 0x37, 0x37, 0x69, 0x37, 0x72,
	0x6c, 0x6f, 0x77, 0x79, 0x63, 0x39, 0x6c, 0x37, 0x6a, 0x70, 0x67, 0x36, 0x65, 0x31, 0x68, 0x6a,
	0x77, 0x68, 0x39, 0x66, 0x65, 0x66, 0x6c, 0x36, 0x62, 0x73, 0x75, 0x78, 0x51, 0x63, 0x65, 0x72,
	0x61, 0x6d, 0x69, 0x63, 0x3a, 0x2f, 0x2f, 0x2a, 0x3f, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x3d, 0x6b,
	0x6a, 0x7a, 0x6c, 0x36, 0x68, 0x76, 0x66, 0x72, 0x62, 0x77, 0x36, 0x63, 0x62, 0x34, 0x6d, 0x73,
	0x64, 0x38, 0x38, 0x69, 0x38, 0x6d, 0x6c, 0x6a, 0x7a, 0x79, 0x70, 0x33, 0x61, 0x7a, 0x77, 0x30,
	0x39, 0x78, 0x32, 0x36, 0x76, 0x33, 0x6b, 0x6a, 0x6f, 0x6a, 0x65, 0x69, 0x74, 0x62, 0x65, 0x78,
	0x31, 0x38, 0x31, 0x65, 0x66, 0x69, 0x39, 0x34, 0x67, 0x35, 0x38, 0x65, 0x6c, 0x66, 0x78, 0x51,
	0x63, 0x65, 0x72, 0x61, 0x6d, 0x69, 0x63, 0x3a, 0x2f, 0x2f, 0x2a, 0x3f, 0x6d, 0x6f, 0x64, 0x65,
	0x6c, 0x3d, 0x6b, 0x6a, 0x7a, 0x6c, 0x36, 0x68, 0x76, 0x66, 0x72, 0x62, 0x77, 0x36, 0x63, 0x37,
	0x67, 0x75, 0x38, 0x38, 0x67, 0x36, 0x36, 0x7a, 0x32, 0x38, 0x6e, 0x38, 0x31, 0x6c, 0x63, 0x70,
	0x62, 0x67, 0x36, 0x68, 0x75, 0x32, 0x74, 0x38, 0x70, 0x75, 0x32, 0x70, 0x75, 0x69, 0x30, 0x73,
	0x66, 0x6e, 0x70, 0x76, 0x73, 0x72, 0x68, 0x71, 0x6e, 0x33, 0x6b, 0x78, 0x68, 0x39, 0x78, 0x61,
	0x69, 0x78, 0x51, 0x63, 0x65, 0x72, 0x61, 0x6d, 0x69, 0x63, 0x3a, 0x2f, 0x2f, 0x2a, 0x3f, 0x6d,
	0x6f, 0x64, 0x65, 0x6c, 0x3d, 0x6b, 0x6a, 0x7a, 0x6c, 0x36, 0x68, 0x76, 0x66, 0x72, 0x62, 0x77,
	0x36, 0x63, 0x61, 0x77, 0x72, 0x6c, 0x37, 0x66, 0x37, 0x36, 0x37, 0x62, 0x36, 0x63, 0x7a, 0x34,
	0x38, 0x64, 0x6e, 0x30, 0x65, 0x66, 0x72, 0x39, 0x77, 0x66, 0x74, 0x78, 0x39, 0x74, 0x39, 0x6a,
	0x65, 0x6c, 0x77, 0x39, 0x74, 0x62, 0x31, 0x6f, 0x74, 0x78, 0x7a, 0x37, 0x35, 0x32, 0x6a, 0x68,
	0x38, 0x36, 0x6b, 0x6e, 0x78, 0x51, 0x63, 0x65, 0x72, 0x61, 0x6d, 0x69, 0x63, 0x3a, 0x2f, 0x2f,
	0x2a, 0x3f, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x3d, 0x6b, 0x6a, 0x7a, 0x6c, 0x36, 0x68, 0x76, 0x66,
	0x72, 0x62, 0x77, 0x36, 0x63, 0x38, 0x36, 0x67, 0x74, 0x39, 0x6a, 0x34, 0x31, 0x35, 0x79, 0x77,
	0x32, 0x78, 0x38, 0x73, 0x74, 0x6d, 0x6b, 0x6f, 0x74, 0x63, 0x72, 0x7a, 0x70, 0x65, 0x75, 0x74,
	0x72, 0x62, 0x6b, 0x70, 0x34, 0x32, 0x69, 0x34, 0x7a, 0x39, 0x30, 0x67, 0x70, 0x35, 0x69, 0x62,
	0x70, 0x74, 0x7a, 0x34, 0x73, 0x73, 0x6f, 0x78, 0x51, 0x63, 0x65, 0x72, 0x61, 0x6d, 0x69, 0x63,
	0x3a, 0x2f, 0x2f, 0x2a, 0x3f, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x3d, 0x6b, 0x6a, 0x7a, 0x6c, 0x36,
	0x68, 0x76, 0x66, 0x72, 0x62, 0x77, 0x36, 0x63, 0x36, 0x76, 0x62, 0x36, 0x34, 0x77, 0x69, 0x38,
	0x38, 0x75, 0x62, 0x34, 0x37, 0x67, 0x62, 0x6d, 0x63, 0x68, 0x38, 0x32, 0x77, 0x63, 0x70, 0x62,
	0x6d, 0x65, 0x35, 0x31, 0x68, 0x79, 0x6d, 0x34, 0x73, 0x39, 0x71, 0x62, 0x70, 0x32, 0x75, 0x6b,
	0x61, 0x63, 0x30, 0x79, 0x74, 0x68, 0x7a, 0x62, 0x6a, 0x39, 0x78, 0x51, 0x63, 0x65, 0x72, 0x61,
	0x6d, 0x69, 0x63, 0x3a, 0x2f, 0x2f, 0x2a, 0x3f, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x3d, 0x6b, 0x6a,
	0x7a, 0x6c, 0x36, 0x68, 0x76, 0x66, 0x72, 0x62, 0x77, 0x36, 0x63, 0x61, 0x67, 0x74, 0x36, 0x39,
	0x34, 0x69, 0x69, 0x6d, 0x32, 0x77, 0x75, 0x65, 0x63, 0x75, 0x37, 0x65, 0x75, 0x6d, 0x65, 0x64,
	0x73, 0x37, 0x71, 0x64, 0x30, 0x70, 0x36, 0x75, 0x7a, 0x6d, 0x38, 0x64, 0x6e, 0x71, 0x73, 0x71,
	0x36, 0x39, 0x6c, 0x6c, 0x37, 0x6b, 0x61, 0x63, 0x6d, 0x30, 0x35, 0x67, 0x75, 0x69, 0x73, 0x74,
	0x61, 0x74, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x78, 0x31, 0x47, 0x69, 0x76, 0x65, 0x20, 0x74, 0x68,
	0x69, 0x73, 0x20, 0x61, 0x70, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x20, 0x61,
	0x63, 0x63, 0x65, 0x73, 0x73, 0x20, 0x74, 0x6f, 0x20, 0x73, 0x6f, 0x6d, 0x65, 0x20, 0x6f, 0x66,
	0x20, 0x79, 0x6f, 0x75, 0x72, 0x20, 0x64, 0x61, 0x74, 0x61, 0x61, 0x73, 0xa2, 0x61, 0x73, 0x78,
	0x84, 0x30, 0x78, 0x66, 0x64, 0x32, 0x34, 0x66, 0x65, 0x64, 0x35, 0x30, 0x34, 0x32, 0x61, 0x65,
	0x32, 0x37, 0x63, 0x62, 0x66, 0x35, 0x36, 0x65, 0x31, 0x37, 0x61, 0x66, 0x36, 0x62, 0x66, 0x66,
	0x37, 0x61, 0x34, 0x34, 0x30, 0x65, 0x36, 0x64, 0x31, 0x36, 0x35, 0x34, 0x66, 0x62, 0x37, 0x38,
	0x66, 0x65, 0x64, 0x38, 0x64, 0x33, 0x62, 0x62, 0x37, 0x62, 0x37, 0x64, 0x63, 0x39, 0x34, 0x61,
	0x32, 0x61, 0x63, 0x32, 0x66, 0x35, 0x32, 0x65, 0x37, 0x33, 0x61, 0x30, 0x30, 0x37, 0x65, 0x64,
	0x38, 0x65, 0x30, 0x31, 0x31, 0x37, 0x30, 0x36, 0x30, 0x66, 0x32, 0x37, 0x36, 0x63, 0x35, 0x39,
	0x36, 0x31, 0x33, 0x61, 0x38, 0x64, 0x36, 0x39, 0x62, 0x38, 0x36, 0x38, 0x32, 0x35, 0x32, 0x65,
	0x62, 0x36, 0x62, 0x31, 0x61, 0x34, 0x31, 0x61, 0x37, 0x64, 0x61, 0x64, 0x65, 0x61, 0x65, 0x33,
	0x36, 0x37, 0x33, 0x31, 0x62, 0x61, 0x74, 0x66, 0x65, 0x69, 0x70, 0x31, 0x39, 0x31,
}
