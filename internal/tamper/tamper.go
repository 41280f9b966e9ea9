// Package tamper implements a parallel fuzz harness that flips single bits
// across a signed message and its packed signature and checks that every
// flip flips verification to false. It exists to exercise, at scale, the
// property that tampering with any byte of msg, R8, or S breaks a
// signature with overwhelming probability.
package tamper

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/vplasencia/semaphore-v4-identity-go/pkg/babyjub"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/codec"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/eddsa"
)

// Target is a signed message under test.
type Target struct {
	Message   []byte
	Signature eddsa.Signature
	PublicKey babyjub.Point
}

// Flip identifies a single bit flip applied to one of the three tamperable
// regions: the message, the packed R8 point, or the packed S scalar.
type Flip struct {
	Region  string
	ByteIdx int
	BitIdx  uint
}

// Report summarizes a tamper run: how many single-bit flips were tried, and
// which ones (if any) still verified. A correct implementation should
// produce zero survivors; any survivor is a property violation.
type Report struct {
	Tested    int64
	Survivors []Flip
}

// RunParallel flips every single bit across target.Message, the packed
// target.Signature.R8, and the packed target.Signature.S, and verifies the
// tampered (message, signature) against target.PublicKey with numWorkers
// goroutines. numWorkers <= 0 auto-detects from runtime.NumCPU.
func RunParallel(target Target, numWorkers int) (*Report, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	packedR8, err := babyjub.Pack(target.Signature.R8)
	if err != nil {
		return nil, fmt.Errorf("tamper: packing R8: %w", err)
	}
	packedS, err := codec.LEBigIntToBytes(target.Signature.S, 32)
	if err != nil {
		return nil, fmt.Errorf("tamper: packing S: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flips := make(chan Flip, numWorkers*10)
	survivors := make(chan Flip, numWorkers)
	var tested int64

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(ctx, flips, survivors, target, packedR8, packedS, &tested, &wg)
	}

	go func() {
		defer close(flips)
		emit := func(region string, n int) bool {
			for byteIdx := 0; byteIdx < n; byteIdx++ {
				for bitIdx := uint(0); bitIdx < 8; bitIdx++ {
					select {
					case <-ctx.Done():
						return false
					case flips <- Flip{Region: region, ByteIdx: byteIdx, BitIdx: bitIdx}:
					}
				}
			}
			return true
		}
		if !emit("message", len(target.Message)) {
			return
		}
		if !emit("r8", len(packedR8)) {
			return
		}
		emit("s", len(packedS))
	}()

	report := &Report{}
	done := make(chan struct{})
	go func() {
		for f := range survivors {
			report.Survivors = append(report.Survivors, f)
		}
		close(done)
	}()

	wg.Wait()
	close(survivors)
	<-done

	report.Tested = atomic.LoadInt64(&tested)
	return report, nil
}

func worker(
	ctx context.Context,
	flips <-chan Flip,
	survivors chan<- Flip,
	target Target,
	packedR8, packedS []byte,
	tested *int64,
	wg *sync.WaitGroup,
) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-flips:
			if !ok {
				return
			}
			atomic.AddInt64(tested, 1)

			msg := append([]byte{}, target.Message...)
			r8 := append([]byte{}, packedR8...)
			s := append([]byte{}, packedS...)

			switch f.Region {
			case "message":
				msg[f.ByteIdx] ^= 1 << f.BitIdx
			case "r8":
				r8[f.ByteIdx] ^= 1 << f.BitIdx
			case "s":
				s[f.ByteIdx] ^= 1 << f.BitIdx
			}

			r8Point, err := babyjub.Unpack(r8)
			if err != nil {
				// Tampering broke R8's curve encoding outright; that is
				// itself a non-survival, nothing further to check.
				continue
			}
			tamperedSig := eddsa.Signature{R8: r8Point, S: codec.LEBytesToBigInt(s)}

			if eddsa.Verify(msg, tamperedSig, target.PublicKey) {
				select {
				case survivors <- f:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
