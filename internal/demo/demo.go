package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/angeloszaimis/seqdemo/internal/seq"
	"github.com/angeloszaimis/seqdemo/internal/words"
	"github.com/angeloszaimis/seqdemo/pkg/logger"
)

// Person is the record used by the designated-initializer demo. It is
// constructed once per run with named fields, printed, and discarded.
type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("(person [%s,%d])", p.Name, p.Age)
}

// Runner executes the demo stages against a single output writer.
type Runner struct {
	out io.Writer
	log *slog.Logger
}

func NewRunner(out io.Writer, log *slog.Logger) *Runner {
	return &Runner{
		out: out,
		log: log,
	}
}

// Run executes every demo stage in fixed order.
func (r *Runner) Run() {
	r.DesignatedInit()
	r.SourceLocation()
	r.EraseRemove()
	r.RemoveDups()
}

// DesignatedInit constructs a Person with named fields and prints it.
func (r *Runner) DesignatedInit() {
	r.log.Debug("running designated initializer demo")

	fmt.Fprintln(r.out, "-- designated initializer for Person")

	p := Person{Name: "bingo", Age: 23}
	fmt.Fprintln(r.out, p)
}

// SourceLocation emits one call-site-tagged line through the logger.
func (r *Runner) SourceLocation() {
	r.log.Debug("running source location demo")

	logger.Callsite(r.out, "Logging Hello world!")
}

// EraseRemove runs the partition/truncate idiom over the fixed sequence,
// printing it after every step. The remove-by-value pass keeps the two
// steps separate so the stale tail is visible before the truncation; the
// remove-odd pass collapses them into one call.
func (r *Runner) EraseRemove() {
	r.log.Debug("running erase-remove demo")

	v := []int{1, 2, 3, 2, 5, 2, 6, 2, 4, 8}
	fmt.Fprintln(r.out, "Original      :", seq.Format(v))

	boundary := seq.Partition(v, func(e int) bool { return e != 2 })
	fmt.Fprintln(r.out, "After Remove  :", seq.Format(v))

	v = seq.Truncate(v, boundary)
	fmt.Fprintln(r.out, "After Erase   :", seq.Format(v))

	isOdd := func(e int) bool { return e%2 != 0 }
	v = seq.RemoveIf(v, isOdd)
	fmt.Fprintln(r.out, "After Odd Del :", seq.Format(v))
}

// RemoveDups deduplicates the fixed word list and prints the distinct
// words in sorted order.
func (r *Runner) RemoveDups() {
	r.log.Debug("running duplicate removal demo")

	unique := words.Unique("a a a b c foo bar foobar foo bar bar")
	fmt.Fprintln(r.out, "Unique Words  : ["+strings.Join(unique, " ")+"]")
}
