package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/knapsack/knapsack"
)

// ErrMalformed indicates a syntactically invalid instance text.
var ErrMalformed = errors.New("instance: malformed input")

// maxPrealloc caps the item slice reserved from an untrusted header count.
const maxPrealloc = 1024

// Parse reads one instance in the text format
//
//	<n> <capacity>
//	<weight> <value>     (n lines)
//
// Blank lines are ignored. Weights and the header are integers; values may be
// any non-negative decimal number. Syntax errors wrap ErrMalformed and name the
// line; semantic errors (negative numbers) wrap the knapsack sentinels.
func Parse(r io.Reader) (knapsack.Instance, error) {
	var (
		sc     = bufio.NewScanner(r)
		lineNo int
		inst   knapsack.Instance
		n      = -1
	)

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return knapsack.Instance{}, errors.Wrapf(ErrMalformed, "line %d: want 2 fields, got %d", lineNo, len(fields))
		}

		// Header.
		if n < 0 {
			count, err := strconv.Atoi(fields[0])
			if err != nil || count < 0 {
				return knapsack.Instance{}, errors.Wrapf(ErrMalformed, "line %d: bad item count %q", lineNo, fields[0])
			}
			capacity, err := strconv.Atoi(fields[1])
			if err != nil {
				return knapsack.Instance{}, errors.Wrapf(ErrMalformed, "line %d: bad capacity %q", lineNo, fields[1])
			}
			n = count
			inst.Capacity = capacity
			inst.Items = make([]knapsack.Item, 0, min(count, maxPrealloc))

			continue
		}

		// Item lines.
		if len(inst.Items) == n {
			return knapsack.Instance{}, errors.Wrapf(ErrMalformed, "line %d: more than %d item lines", lineNo, n)
		}
		weight, err := strconv.Atoi(fields[0])
		if err != nil {
			return knapsack.Instance{}, errors.Wrapf(ErrMalformed, "line %d: bad weight %q", lineNo, fields[0])
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return knapsack.Instance{}, errors.Wrapf(ErrMalformed, "line %d: bad value %q", lineNo, fields[1])
		}
		inst.Items = append(inst.Items, knapsack.Item{Weight: weight, Value: value})
	}
	if err := sc.Err(); err != nil {
		return knapsack.Instance{}, errors.Wrap(err, "reading instance")
	}

	if n < 0 {
		return knapsack.Instance{}, errors.Wrap(ErrMalformed, "missing header")
	}
	if len(inst.Items) != n {
		return knapsack.Instance{}, errors.Wrapf(ErrMalformed, "header announces %d items, found %d", n, len(inst.Items))
	}
	if err := knapsack.Validate(inst); err != nil {
		return knapsack.Instance{}, errors.Wrap(err, "validating instance")
	}

	return inst, nil
}

// ReadFile parses the instance stored at path.
func ReadFile(path string) (knapsack.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return knapsack.Instance{}, errors.Wrap(err, "opening instance")
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return knapsack.Instance{}, errors.Wrapf(err, "parsing %s", path)
	}

	return inst, nil
}

// Format writes inst in the text format accepted by Parse. Integral values are
// written without a fractional part.
func Format(w io.Writer, inst knapsack.Instance) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", len(inst.Items), inst.Capacity); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, it := range inst.Items {
		if _, err := fmt.Fprintf(bw, "%d %s\n", it.Weight, strconv.FormatFloat(it.Value, 'f', -1, 64)); err != nil {
			return errors.Wrap(err, "writing item")
		}
	}

	return errors.Wrap(bw.Flush(), "flushing instance")
}

// WriteFile stores inst at path, replacing any existing file.
func WriteFile(path string, inst knapsack.Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating instance file")
	}
	if err := Format(f, inst); err != nil {
		f.Close()

		return errors.Wrapf(err, "writing %s", path)
	}

	return errors.Wrapf(f.Close(), "closing %s", path)
}
