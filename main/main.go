package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/contiguous"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	buf := make([]int64, 1<<16)
	for i := range buf {
		buf[i] = int64(i)
	}
	v := contiguous.ViewOf(buf)
	var sum int64
	for i := 0; i < 10000; i++ {
		w := v.Sub(i%100, contiguous.Dynamic)
		for x := range w.Last(1024).Values() {
			sum += x
		}
		sum += int64(w.Bytes().Size())
	}
	log.Println("checksum:", sum)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
