package osc

// Shared packet fixtures. Every raw byte sequence here is written out
// by hand so the tests check the wire format itself, not just the
// round trip.

type testCase struct {
	name string
	obj  Packet
	raw  []byte
}

// Time tags used by the bundle fixtures: whole seconds on the OSC
// epoch, one second apart.
const (
	tagT = Timetag(0x83aa7e80) << 32
	tagU = Timetag(0x83aa7e81) << 32
)

var (
	msgNoArgsRaw = []byte("/a\x00\x00" + ",\x00\x00\x00")

	msgIFSRaw = []byte("/foo\x00\x00\x00\x00" +
		",ifs\x00\x00\x00\x00" +
		"\x00\x00\x00\x01" +
		"\x40\x20\x00\x00" +
		"bar\x00")

	msgDoubleBlobRaw = []byte("/dsp\x00\x00\x00\x00" +
		",db\x00" +
		"\x3f\xe0\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x03\x01\x02\x03\x00")

	// A blob whose length is already a multiple of 4 still gets a full
	// pad word.
	msgBlob4Raw = []byte("/blob4\x00\x00" +
		",b\x00\x00" +
		"\x00\x00\x00\x04" +
		"\x01\x02\x03\x04\x00\x00\x00\x00")
)

var messageTestCases = []testCase{
	{
		name: "no_args",
		obj:  &Message{Address: "/a"},
		raw:  msgNoArgsRaw,
	},
	{
		name: "int_float_string",
		obj: &Message{
			Address:   "/foo",
			Arguments: []interface{}{int32(1), float32(2.5), "bar"},
		},
		raw: msgIFSRaw,
	},
	{
		name: "double_blob",
		obj: &Message{
			Address:   "/dsp",
			Arguments: []interface{}{float64(0.5), []byte{1, 2, 3}},
		},
		raw: msgDoubleBlobRaw,
	},
	{
		name: "aligned_blob",
		obj: &Message{
			Address:   "/blob4",
			Arguments: []interface{}{[]byte{1, 2, 3, 4}},
		},
		raw: msgBlob4Raw,
	},
}

var bundleTestCases = []testCase{
	{
		name: "empty_bundle",
		obj:  &Bundle{Timetag: Immediate},
		raw:  []byte("#bundle\x00" + "\x00\x00\x00\x00\x00\x00\x00\x01"),
	},
	{
		name: "two_messages",
		obj: &Bundle{
			Timetag: tagT,
			Elements: []Packet{
				&Message{Address: "/a", Timetag: tagT},
				&Message{
					Address:   "/foo",
					Arguments: []interface{}{int32(1), float32(2.5), "bar"},
					Timetag:   tagT,
				},
			},
		},
		raw: []byte("#bundle\x00" + "\x83\xaa\x7e\x80\x00\x00\x00\x00" +
			"\x00\x00\x00\x08" +
			"/a\x00\x00" + ",\x00\x00\x00" +
			"\x00\x00\x00\x1c" +
			"/foo\x00\x00\x00\x00" + ",ifs\x00\x00\x00\x00" +
			"\x00\x00\x00\x01" + "\x40\x20\x00\x00" + "bar\x00"),
	},
	{
		name: "nested_bundle",
		obj: &Bundle{
			Timetag: tagT,
			Elements: []Packet{
				&Bundle{
					Timetag: tagU,
					Elements: []Packet{
						&Message{
							Address:   "/x",
							Arguments: []interface{}{int32(1)},
							Timetag:   tagU,
						},
					},
				},
			},
		},
		raw: []byte("#bundle\x00" + "\x83\xaa\x7e\x80\x00\x00\x00\x00" +
			"\x00\x00\x00\x20" +
			"#bundle\x00" + "\x83\xaa\x7e\x81\x00\x00\x00\x00" +
			"\x00\x00\x00\x0c" +
			"/x\x00\x00" + ",i\x00\x00" + "\x00\x00\x00\x01"),
	},
}
