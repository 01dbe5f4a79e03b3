package filestore

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"colDB/internal/storage"
	"colDB/internal/storage/memstore"

	"github.com/zeebo/xxh3"
)

const (
	fileMagic     = "COLDB\x00" // 6 bytes magic
	formatVersion = uint16(1)

	headerSize   = len(fileMagic) + 2
	trailerSize  = 8
	minTableSize = 4 + 1 + 4 + 4 // empty name + NUL, column_count, row_count
)

// formatError is a decoding failure. It unwraps to storage.ErrCorruptFormat.
type formatError struct {
	msg string
}

func (e *formatError) Error() string { return e.msg }

func (e *formatError) Unwrap() error { return storage.ErrCorruptFormat }

func corruptf(format string, args ...any) error {
	return &formatError{msg: fmt.Sprintf(format, args...)}
}

// encoder writes little-endian values and feeds every byte to the checksum.
type encoder struct {
	w   io.Writer
	sum *xxh3.Hasher
	buf [4]byte
}

func (e *encoder) write(p []byte) error {
	_, _ = e.sum.Write(p)
	_, err := e.w.Write(p)
	return err
}

func (e *encoder) writeInt32(v int) error {
	if v < 0 || v > math.MaxInt32 {
		return fmt.Errorf("filestore: value %d does not fit in int32", v)
	}
	binary.LittleEndian.PutUint32(e.buf[:], uint32(v))
	return e.write(e.buf[:])
}

// writeString writes a length that counts the trailing NUL, then the bytes and
// the NUL.
func (e *encoder) writeString(s string) error {
	if len(s) >= math.MaxInt32 {
		return fmt.Errorf("filestore: string of %d bytes is too long", len(s))
	}
	if err := e.writeInt32(len(s) + 1); err != nil {
		return err
	}
	if err := e.write([]byte(s)); err != nil {
		return err
	}
	return e.write([]byte{0})
}

// Encode writes every table of c to w.
//
// Layout (little endian, no padding):
//
//	magic:        6 bytes "COLDB\x00"
//	version:      uint16
//	table_count:  int32
//	per table:
//	  name:         lpstring
//	  column_count: int32
//	  row_count:    int32
//	  per column:
//	    name:       lpstring
//	    cells:      row_count x lpstring
//	checksum:     uint64, xxh3 of every preceding byte
//
// lpstring is an int32 length that includes a trailing NUL, followed by
// that many bytes.
func Encode(w io.Writer, c storage.Catalog) error {
	bw := bufio.NewWriter(w)
	enc := &encoder{w: bw, sum: xxh3.New()}

	var ver [2]byte
	binary.LittleEndian.PutUint16(ver[:], formatVersion)
	if err := enc.write([]byte(fileMagic)); err != nil {
		return err
	}
	if err := enc.write(ver[:]); err != nil {
		return err
	}

	tables := c.Tables()
	if err := enc.writeInt32(len(tables)); err != nil {
		return err
	}

	for _, name := range tables {
		if err := encodeTable(enc, c, name); err != nil {
			return err
		}
	}

	var sum [trailerSize]byte
	binary.LittleEndian.PutUint64(sum[:], enc.sum.Sum64())
	if _, err := bw.Write(sum[:]); err != nil {
		return err
	}

	return bw.Flush()
}

// encodeTable writes one table column by column.
func encodeTable(enc *encoder, c storage.Catalog, name string) error {
	cols, rows, err := c.Scan(name)
	if err != nil {
		return err
	}
	if err := enc.writeString(name); err != nil {
		return err
	}
	if err := enc.writeInt32(len(cols)); err != nil {
		return err
	}
	if err := enc.writeInt32(len(rows)); err != nil {
		return err
	}
	for i, col := range cols {
		if err := enc.writeString(col); err != nil {
			return err
		}
		for _, row := range rows {
			if err := enc.writeString(row[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// decoder reads from an in-memory copy of the file, so every count and
// length can be checked against the bytes that remain.
type decoder struct {
	buf    []byte
	offset int
}

func (d *decoder) remaining() int { return len(d.buf) - d.offset }

func (d *decoder) readInt32(what string) (int, error) {
	if d.remaining() < 4 {
		return 0, corruptf("truncated %s", what)
	}
	v := int32(binary.LittleEndian.Uint32(d.buf[d.offset:]))
	d.offset += 4
	if v < 0 {
		return 0, corruptf("negative %s %d", what, v)
	}
	return int(v), nil
}

func (d *decoder) readString(what string) (string, error) {
	n, err := d.readInt32(what + " length")
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", corruptf("%s has zero length, missing terminator", what)
	}
	if n > d.remaining() {
		return "", corruptf("%s length %d exceeds remaining %d bytes", what, n, d.remaining())
	}
	raw := d.buf[d.offset : d.offset+n]
	d.offset += n
	if raw[n-1] != 0 {
		return "", corruptf("%s is not NUL terminated", what)
	}
	return string(raw[:n-1]), nil
}

// Decode parses a complete database file into a new store. Any
// inconsistency fails the whole decode; nothing partial is returned.
func Decode(data []byte) (*memstore.Store, error) {
	if len(data) < headerSize+4+trailerSize {
		return nil, corruptf("file too short (%d bytes)", len(data))
	}
	if string(data[:len(fileMagic)]) != fileMagic {
		return nil, corruptf("bad magic")
	}
	if v := binary.LittleEndian.Uint16(data[len(fileMagic):headerSize]); v != formatVersion {
		return nil, corruptf("unsupported format version %d", v)
	}

	body := data[:len(data)-trailerSize]
	want := binary.LittleEndian.Uint64(data[len(data)-trailerSize:])
	if got := xxh3.Hash(body); got != want {
		return nil, corruptf("checksum mismatch")
	}

	d := &decoder{buf: body, offset: headerSize}
	staging := memstore.New()

	tableCount, err := d.readInt32("table count")
	if err != nil {
		return nil, err
	}
	if tableCount > d.remaining()/minTableSize {
		return nil, corruptf("table count %d exceeds remaining %d bytes", tableCount, d.remaining())
	}

	for i := 0; i < tableCount; i++ {
		name, err := d.readString("table name")
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}
		if err := decodeTable(d, staging, name); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
	}

	if d.remaining() != 0 {
		return nil, corruptf("%d unexpected trailing bytes", d.remaining())
	}

	return staging, nil
}

func decodeTable(d *decoder, staging *memstore.Store, name string) error {
	colCount, err := d.readInt32("column count")
	if err != nil {
		return err
	}
	rowCount, err := d.readInt32("row count")
	if err != nil {
		return err
	}
	if colCount == 0 {
		return corruptf("no columns")
	}
	// Every column name and every cell takes at least 5 bytes.
	if colCount > d.remaining()/5 || rowCount > d.remaining()/5 {
		return corruptf("counts %d/%d exceed remaining %d bytes", colCount, rowCount, d.remaining())
	}

	cols := make([]memstore.Column, 0, colCount)
	for c := 0; c < colCount; c++ {
		colName, err := d.readString("column name")
		if err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
		cells := make([]string, 0, rowCount)
		for r := 0; r < rowCount; r++ {
			cell, err := d.readString("cell")
			if err != nil {
				return fmt.Errorf("column %q row %d: %w", colName, r, err)
			}
			cells = append(cells, cell)
		}
		cols = append(cols, memstore.Column{Name: colName, Cells: cells})
	}

	if err := staging.Attach(name, cols); err != nil {
		return corruptf("%v", err)
	}
	return nil
}
