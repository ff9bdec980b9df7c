package spectral2D

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/notargets/goconvect/utils"
)

/*
Snapshot files are raw little endian float64 streams with no header:
each matrix is written whole, in the order the caller lists them.
Reads are strict, a short file is an error, there is no partial state
recovery.
*/
func WriteFields(w io.Writer, fields ...utils.Matrix) (err error) {
	for _, f := range fields {
		if err = binary.Write(w, binary.LittleEndian, f.DataP); err != nil {
			return fmt.Errorf("short write of snapshot field: %v", err)
		}
	}
	return
}

func ReadFields(r io.Reader, fields ...utils.Matrix) (err error) {
	for _, f := range fields {
		if err = binary.Read(r, binary.LittleEndian, f.DataP); err != nil {
			return fmt.Errorf("short read of snapshot field: %v", err)
		}
	}
	return
}

func SaveFile(fileName string, fields ...utils.Matrix) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to open %s for writing: %v", fileName, err)
	}
	defer file.Close()
	if err = WriteFields(file, fields...); err != nil {
		return fmt.Errorf("unable to write %s: %v", fileName, err)
	}
	return
}

func LoadFile(fileName string, fields ...utils.Matrix) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(fileName); err != nil {
		return fmt.Errorf("unable to open %s for reading: %v", fileName, err)
	}
	defer file.Close()
	if err = ReadFields(file, fields...); err != nil {
		return fmt.Errorf("unable to read %s: %v", fileName, err)
	}
	return
}

// AppendFloat appends one float64 to a time series log
func AppendFloat(fileName string, val float64) (err error) {
	var (
		file *os.File
	)
	if file, err = os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return fmt.Errorf("unable to open %s for appending: %v", fileName, err)
	}
	defer file.Close()
	if err = binary.Write(file, binary.LittleEndian, val); err != nil {
		return fmt.Errorf("unable to append to %s: %v", fileName, err)
	}
	return
}
