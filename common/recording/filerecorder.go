package recording

import (
	"bytes"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/utils"
)

// FileRecorder buffers record lines and writes them out on Close.
type FileRecorder struct {
	buffer   bytes.Buffer
	filename string
	count    int
}

func MakeFileRecorder(filename string) *FileRecorder {
	return &FileRecorder{
		filename: filename,
	}
}

func (r *FileRecorder) Record(scenario string, kind string, event interface{}) error {
	line, err := makeRecordLine(scenario, kind, event)
	if err != nil {
		return err
	}

	r.buffer.Write(line)
	r.buffer.WriteByte('\n')
	r.count++

	return nil
}

func (r *FileRecorder) Count() int {
	return r.count
}

func (r *FileRecorder) Close() error {
	if err := ioutil.WriteFile(r.filename, r.buffer.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "could not write record "+r.filename)
	}

	utils.DebugContext("recording", "record written", utils.Context{
		"file":  r.filename,
		"lines": r.count,
	})

	return nil
}
