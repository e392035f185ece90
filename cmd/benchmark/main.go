package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/coldsignal/combine"
	"github.com/delaneyj/coldsignal/disposable"
	"github.com/delaneyj/coldsignal/lock"
	"github.com/delaneyj/coldsignal/signal"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	profile = flag.String("cpuprofile", "", "write a CPU profile to this file")
	iters   = flag.Int("iters", 1_000, "iterations per benchmark row")
)

func main() {
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	for _, k := range []lock.Kind{lock.KindMutex, lock.KindSpin} {
		lock.SetDefault(k)
		benchmarkChains(k, false)
	}

	for _, k := range []lock.Kind{lock.KindMutex, lock.KindSpin} {
		lock.SetDefault(k)
		benchmarkChains(k, true)
		benchmarkCombine(k, true)
	}
}

var (
	depths = []int{1, 10, 100}
	counts = []int{1, 100, 10_000}
)

// sink keeps the map chains from being optimized away.
var sink int

func addOne(v int) int {
	return v + 1
}

// source emits count values and completes.
func source(count int) signal.Signal[int, signal.NoError] {
	return signal.New(func(sub *signal.Subscriber[int, signal.NoError]) disposable.Disposable {
		for i := 0; i < count && sub.Active(); i++ {
			sub.PutNext(i)
		}
		sub.PutCompletion()
		return nil
	})
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "events", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, events int, calc *tachymeter.Metrics) {
	tbl.AppendRows([]table.Row{
		{
			name,
			humanize.Comma(int64(events)),
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

func benchmarkChains(k lock.Kind, shouldRender bool) {
	tbl := newTable(fmt.Sprintf("Map chains (%s lock)", k))

	for _, depth := range depths {
		for _, count := range counts {
			tach := tachymeter.New(&tachymeter.Config{Size: *iters})

			s := source(count)
			for j := 0; j < depth; j++ {
				s = signal.Map(s, addOne)
			}

			for i := 0; i < *iters; i++ {
				sum := 0
				start := time.Now()
				d := s.Start(func(v int) { sum += v }, nil, nil)
				d.Dispose()
				tach.AddTime(time.Since(start))
				sink += sum
			}

			appendCalc(tbl, fmt.Sprintf("start+dispose: depth %d", depth), count, tach.Calc())
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkCombine(k lock.Kind, shouldRender bool) {
	tbl := newTable(fmt.Sprintf("Combine4 (%s lock)", k))

	for _, count := range counts {
		tach := tachymeter.New(&tachymeter.Config{Size: *iters})
		s := combine.Combine4(source(count), source(count), source(count), source(count))

		for i := 0; i < *iters; i++ {
			start := time.Now()
			d := s.Start(nil, nil, nil)
			d.Dispose()
			tach.AddTime(time.Since(start))
		}

		appendCalc(tbl, "combine latest", 4*count, tach.Calc())
	}

	if shouldRender {
		tbl.Render()
	}
}
