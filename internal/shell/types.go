package shell

import "strconv"

// -- ls --

type ListRequest struct {
	Path string `mapstructure:"path"`
	Long bool   `mapstructure:"l"`
}

// -- file, stat, cat --

type FileRequest struct {
	Path string `mapstructure:"path"`
}

func (r *FileRequest) Validate() error {
	if r.Path == "" {
		return errPathRequired
	}
	return nil
}

// -- du --

type DiskUsageRequest struct {
	Path  string `mapstructure:"path"`
	Human bool   `mapstructure:"h"`
}

// -- cd --

type ChangeDirectoryRequest struct {
	Path string `mapstructure:"path"`
}

// -- hexdump --

type HexdumpRequest struct {
	Path      string `mapstructure:"path"`
	RawOffset string `mapstructure:"offset"`
	RawLength string `mapstructure:"len"`

	offset uint64
	length uint64
}

// Validate parses the numeric flags strictly: only unsigned decimal integers are accepted.
func (r *HexdumpRequest) Validate() error {
	if r.RawOffset != "" {
		v, err := strconv.ParseUint(r.RawOffset, 10, 64)
		if err != nil {
			return &InvalidValueError{Field: "offset", Value: r.RawOffset}
		}
		r.offset = v
	}
	if r.RawLength != "" {
		v, err := strconv.ParseUint(r.RawLength, 10, 64)
		if err != nil {
			return &InvalidValueError{Field: "length", Value: r.RawLength}
		}
		r.length = v
	}
	if r.Path == "" {
		return errPathRequired
	}
	return nil
}

func (r HexdumpRequest) Offset() uint64 { return r.offset }
func (r HexdumpRequest) Length() uint64 { return r.length }

// -- pwd, help --

type NoArgsRequest struct{}
