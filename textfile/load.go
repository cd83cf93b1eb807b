package textfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rrb"
	"golang.org/x/sync/errgroup"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// Progress describes one loaded fragment during asynchronous loading.
type Progress struct {
	Fragment int   // fragment ordinal, starting at 0
	Lines    int   // number of lines found in this fragment
	Bytes    int64 // fragment length in bytes
}

// Loading is a handle to an in-flight load. Clients may subscribe to
// fragment progress and collect the result with Wait.
type Loading struct {
	cast *caster.Caster // broadcaster for messages when fragments are scanned
	done chan struct{}
	vec  rrb.Vector[string]
	err  error
}

// Load reads a file, which must be a text file, and returns its lines as a
// vector. Line endings are not part of the values; both "a\nb" and "a\nb\n"
// load as two lines.
func Load(name string) (rrb.Vector[string], error) {
	loading, err := LoadAsync(name)
	if err != nil {
		return rrb.Vector[string]{}, err
	}
	return loading.Wait()
}

// LoadAsync starts loading a text file in the background and returns a
// handle immediately. Opening the file happens synchronously, so invalid
// paths fail right away.
func LoadAsync(name string) (*Loading, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	loading := &Loading{
		cast: caster.New(nil), // we will broadcast messages when fragments are scanned
		done: make(chan struct{}),
	}
	go loading.run(file, fi.Size())
	return loading, nil
}

// Subscribe returns a channel of Progress broadcasts. The channel closes
// when loading finishes. The boolean is false when loading already finished.
func (l *Loading) Subscribe() (<-chan interface{}, bool) {
	return l.cast.Sub(nil, 1)
}

// Wait blocks until loading finished and returns the vector of lines.
func (l *Loading) Wait() (rrb.Vector[string], error) {
	<-l.done
	return l.vec, l.err
}

func (l *Loading) run(file *os.File, size int64) {
	defer close(l.done)
	defer l.cast.Close()
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		l.err = fmt.Errorf("error loading text file: %w", err)
		return
	}
	frags := fragments(content, fragSizeFor(size))
	tracer().Debugf("textfile: scanning %d fragment(s)", len(frags))
	lines := make([][]string, len(frags))
	g := new(errgroup.Group)
	for i, frag := range frags {
		g.Go(func() error {
			lines[i] = scanLines(frag)
			// TryPub keeps scanning non-blocking when nobody subscribed.
			l.cast.TryPub(Progress{
				Fragment: i,
				Lines:    len(lines[i]),
				Bytes:    int64(len(frag)),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.err = err
		return
	}
	builder, err := rrb.NewBuilderWith[string](rrb.FatTailCapacity)
	if err != nil {
		l.err = err
		return
	}
	for _, frag := range lines {
		for _, line := range frag {
			builder.Push(line)
		}
	}
	l.vec = builder.Vector()
}

// fragSizeFor picks a fragment length for parallel scanning, depending on
// the file size.
func fragSizeFor(size int64) int64 {
	switch {
	case size < 64:
		return 64
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	default:
		return sixKb
	}
}

// fragments cuts content into chunks of roughly fragSize bytes, each ending
// on a line boundary (except possibly the last one).
func fragments(content []byte, fragSize int64) [][]byte {
	var frags [][]byte
	for len(content) > 0 {
		end := int(fragSize)
		if end >= len(content) {
			frags = append(frags, content)
			break
		}
		if nl := bytes.IndexByte(content[end:], '\n'); nl >= 0 {
			end += nl + 1
		} else {
			end = len(content)
		}
		frags = append(frags, content[:end])
		content = content[end:]
	}
	return frags
}

// scanLines splits a fragment into lines, dropping line terminators.
func scanLines(frag []byte) []string {
	if len(frag) == 0 {
		return nil
	}
	lines := make([]string, 0, 16)
	for len(frag) > 0 {
		nl := bytes.IndexByte(frag, '\n')
		if nl < 0 {
			lines = append(lines, string(frag))
			break
		}
		lines = append(lines, string(frag[:nl]))
		frag = frag[nl+1:]
	}
	return lines
}
