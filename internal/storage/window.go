package storage

// ClampRange turns a requested (offset, length) read into a byte range within a file
// of the given size. length 0 means to the end of the file. An offset equal to the
// size yields an empty range; an offset beyond it is an error.
func ClampRange(path string, size, offset, length int64) (start, end int64, err error) {
	if offset < 0 || offset > size {
		return 0, 0, &OffsetError{Path: path, Offset: offset, Size: size}
	}
	end = size
	if length > 0 && offset+length < size {
		end = offset + length
	}
	return offset, end, nil
}

// ReadLimit returns how many bytes ReadContent should return for a file of size.
func ReadLimit(size, maxSize int64) int64 {
	if maxSize > 0 && maxSize < size {
		return maxSize
	}
	return size
}
