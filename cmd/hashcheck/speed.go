package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	hashpkg "github.com/sparkidev/hash"
)

const speedBufSize = 1 << 20 // 1 MiB per iteration
const speedDuration = 200 * time.Millisecond

// runSpeed benchmarks each algorithm by repeating Init+Write+Sum passes over
// a speedBufSize buffer for roughly speedDuration and renders a throughput
// table, mirroring the
// benchmarking intent of the original test harness's speed mode.
func runSpeed(ids []hashpkg.AlgorithmID) {
	buf := make([]byte, speedBufSize)
	for i := range buf {
		buf[i] = byte(i)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Algorithm", "Output bytes", "MB/s"})

	for _, id := range ids {
		outLen, err := hashpkg.OutputLen(id)
		if err != nil {
			continue
		}
		h, err := hashpkg.NewHash(id, hashpkg.FlagInternal)
		if err != nil {
			continue
		}

		var bytesDone int64
		deadline := time.Now().Add(speedDuration)
		start := time.Now()
		for time.Now().Before(deadline) {
			if err := h.Init(); err != nil {
				break
			}
			if _, err := h.Write(buf); err != nil {
				break
			}
			if _, err := h.Sum(nil); err != nil {
				break
			}
			bytesDone += int64(len(buf))
		}
		elapsed := time.Since(start).Seconds()

		mbPerSec := 0.0
		if elapsed > 0 {
			mbPerSec = float64(bytesDone) / (1 << 20) / elapsed
		}
		table.Append([]string{algoName(id), fmt.Sprintf("%d", outLen), fmt.Sprintf("%.1f", mbPerSec)})
	}

	table.Render()
}
