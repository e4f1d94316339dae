package shell

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Cyclone1070/rootnav/internal/content"
	"github.com/Cyclone1070/rootnav/internal/format"
	"github.com/Cyclone1070/rootnav/internal/storage"
)

// lookup resolves raw and fetches its metadata. Missing entries are reported
// with notFound so each command can word the failure its own way.
func (d *Dispatcher) lookup(ctx context.Context, raw string, notFound func(string) error) (string, storage.FileRecord, error) {
	vp, err := d.session.Resolve(raw)
	if err != nil {
		return "", storage.FileRecord{}, err
	}

	rec, err := d.backend().FileInfo(ctx, vp)
	if err != nil {
		if storage.IsNotFound(err) {
			return "", storage.FileRecord{}, notFound(raw)
		}
		return "", storage.FileRecord{}, &OperationError{Op: "Cannot stat", Path: raw, Cause: rootCause(err)}
	}
	return vp, rec, nil
}

func pathNotFound(raw string) error { return &PathNotFoundError{Path: raw} }
func fileNotFound(raw string) error { return &FileNotFoundError{Path: raw} }

func (d *Dispatcher) list(ctx context.Context, req ListRequest) (string, error) {
	target := req.Path
	if target == "" {
		target = "."
	}

	vp, rec, err := d.lookup(ctx, target, pathNotFound)
	if err != nil {
		return "", err
	}

	if !rec.IsDir() {
		if req.Long {
			return longEntry(rec), nil
		}
		return rec.Name, nil
	}

	entries, err := d.backend().ListDirectory(ctx, vp)
	if err != nil {
		return "", &OperationError{Op: "Cannot list", Path: target, Cause: rootCause(err)}
	}
	if len(entries) == 0 {
		return "Directory is empty", nil
	}

	if req.Long {
		lines := make([]string, len(entries))
		for i, e := range entries {
			lines[i] = longEntry(e)
		}
		return strings.Join(lines, "\n"), nil
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return strings.Join(names, "  "), nil
}

func longEntry(rec storage.FileRecord) string {
	return fmt.Sprintf("%s %10d %s %s", format.Permissions(rec.Mode), rec.Size, format.Time(rec.ModTime), rec.Name)
}

func (d *Dispatcher) file(ctx context.Context, req FileRequest) (string, error) {
	vp, rec, err := d.lookup(ctx, req.Path, fileNotFound)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", req.Path, rec.Kind)
	if rec.Kind != storage.KindRegular {
		return sb.String(), nil
	}

	sample, err := d.backend().ReadContent(ctx, vp, d.limits.ClassifySize)
	if err != nil {
		d.logger.Debug("classify read failed", "path", vp, "err", err)
		sb.WriteString(", cannot read content")
		return sb.String(), nil
	}

	if content.IsText(sample) {
		sb.WriteString(", text file")
	} else {
		sb.WriteString(", binary file")
	}
	if mime := content.MimeType(req.Path); mime != "" {
		fmt.Fprintf(&sb, " (%s)", mime)
	}
	return sb.String(), nil
}

func (d *Dispatcher) stat(ctx context.Context, req FileRequest) (string, error) {
	_, rec, err := d.lookup(ctx, req.Path, fileNotFound)
	if err != nil {
		return "", err
	}

	lines := []string{
		"File: " + req.Path,
		"Type: " + rec.Kind.String(),
		fmt.Sprintf("Size: %d bytes", rec.Size),
		fmt.Sprintf("Permissions: %s (%s)", format.Permissions(rec.Mode), format.Octal(rec.Mode)),
		"Modified: " + format.Time(rec.ModTime),
		"Accessed: " + format.Time(rec.AccessTime),
		"Created: " + format.Time(rec.ChangeTime),
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) diskUsage(ctx context.Context, req DiskUsageRequest) (string, error) {
	target := req.Path
	if target == "" {
		target = "."
	}

	vp, _, err := d.lookup(ctx, target, pathNotFound)
	if err != nil {
		return "", err
	}

	size, err := d.backend().DirectorySize(ctx, vp, true)
	if err != nil {
		return "", &OperationError{Op: "Cannot measure", Path: target, Cause: rootCause(err)}
	}
	return format.Size(size, req.Human) + "\t" + target, nil
}

func (d *Dispatcher) cat(ctx context.Context, req FileRequest) (string, error) {
	vp, rec, err := d.lookup(ctx, req.Path, fileNotFound)
	if err != nil {
		return "", err
	}
	if rec.IsDir() {
		return "", &IsDirectoryError{Path: req.Path, Action: "display content"}
	}

	data, err := d.backend().ReadContent(ctx, vp, d.limits.MaxReadSize)
	if err != nil {
		return "", &OperationError{Op: "Cannot read", Path: req.Path, Cause: rootCause(err)}
	}
	if len(data) == 0 {
		return "File is empty", nil
	}
	if !content.IsText(data) {
		return "", &BinaryFileError{Path: req.Path}
	}
	return string(data), nil
}

func (d *Dispatcher) changeDirectory(ctx context.Context, req ChangeDirectoryRequest) (string, error) {
	if err := d.session.ChangeDirectory(ctx, req.Path); err != nil {
		return "", err
	}
	return "", nil
}

func (d *Dispatcher) printWorkingDirectory(context.Context, NoArgsRequest) (string, error) {
	return d.session.CurrentDirectory(), nil
}

func (d *Dispatcher) hexdump(ctx context.Context, req HexdumpRequest) (string, error) {
	vp, rec, err := d.lookup(ctx, req.Path, fileNotFound)
	if err != nil {
		return "", err
	}
	if rec.IsDir() {
		return "", &IsDirectoryError{Path: req.Path, Action: "hexdump"}
	}

	offset, length := req.Offset(), req.Length()
	var data []byte
	if offset > 0 || length > 0 {
		if offset > math.MaxInt64 {
			return "", &OffsetError{Path: req.Path, Offset: offset}
		}
		window := uint64(d.limits.MaxReadSize)
		if length > 0 && length < window {
			window = length
		}
		data, err = d.backend().ReadContentAt(ctx, vp, int64(offset), int64(window))
	} else {
		data, err = d.backend().ReadContent(ctx, vp, d.limits.MaxReadSize)
	}
	if err != nil {
		if errors.Is(err, storage.ErrOffsetOutOfRange) {
			return "", &OffsetError{Path: req.Path, Offset: offset}
		}
		return "", &OperationError{Op: "Cannot read", Path: req.Path, Cause: rootCause(err)}
	}

	if len(data) == 0 {
		return "No data to display (file empty or offset beyond file size)", nil
	}
	dump := content.RenderDump(content.ByteWindow{Offset: offset, Data: data})
	return strings.TrimSuffix(dump, "\n"), nil
}

func (d *Dispatcher) help(context.Context, NoArgsRequest) (string, error) {
	return helpText, nil
}
