// SPDX-License-Identifier: EPL-2.0

// aoplay decodes an audio file and plays it through libao.
//
// Usage:
//
//	aoplay [flags] <file>
//
// The decoder is chosen by file extension unless -format overrides it.
// Environment defaults (also read from a .env file in the working
// directory): AOPLAY_DRIVER, AOPLAY_BUFFER.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ik5/goao"
	"github.com/ik5/goao/ao"
	"github.com/ik5/goao/formats/aiff"
	"github.com/ik5/goao/formats/mp3"
	"github.com/ik5/goao/formats/vorbis"
	"github.com/ik5/goao/formats/wav"
	"github.com/ik5/goao/pcm"
)

// optionFlags collects repeated -o key:value pairs.
type optionFlags []string

func (o *optionFlags) String() string { return strings.Join(*o, ",") }

func (o *optionFlags) Set(v string) error {
	if !strings.Contains(v, ":") {
		return fmt.Errorf("option %q is not key:value", v)
	}
	*o = append(*o, v)
	return nil
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func newRegistry() *pcm.Registry {
	registry := pcm.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})
	return registry
}

func main() {
	// A .env file is optional; explicit flags win over its defaults.
	_ = godotenv.Load()

	driverName := flag.String("driver", os.Getenv("AOPLAY_DRIVER"),
		"libao driver short name (empty = system default)")
	formatName := flag.String("format", "",
		"input format override: wav, mp3, ogg, aiff")
	bufSize := flag.Int("buffer", envInt("AOPLAY_BUFFER", goao.DefaultBufferSize),
		"playback buffer size in bytes")
	var options optionFlags
	flag.Var(&options, "o", "driver option as key:value (repeatable)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: aoplay [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	name := strings.ToLower(*formatName)
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	registry := newRegistry()
	decoder, ok := registry.Get(name)
	if !ok {
		known := registry.Formats()
		sort.Strings(known)
		log.Fatalf("No decoder for format %q (supported: %s)", name, strings.Join(known, ", "))
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer file.Close()

	src, err := decoder.Decode(file)
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", path, err)
	}
	defer src.Close()

	ctx := ao.New()
	defer ctx.Close()

	var driver ao.Driver
	if *driverName == "" {
		driver, err = ctx.DefaultDriver()
	} else {
		driver, err = ctx.DriverByName(*driverName)
	}
	if err != nil {
		log.Fatalf("Failed to resolve driver: %v", err)
	}

	settings := &ao.Options{}
	for _, kv := range options {
		key, value, _ := strings.Cut(kv, ":")
		settings.Append(key, value)
	}

	dev, err := ctx.OpenLive(driver, goao.FormatFor(src), settings)
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	// Device must close before the context shuts libao down.
	defer dev.Close()

	played, err := goao.Play(dev, src, *bufSize)
	if err != nil {
		log.Fatalf("Playback failed after %d bytes: %v", played, err)
	}

	log.Printf("Played %d bytes (%d Hz, %d channels) from %s",
		played, src.SampleRate(), src.Channels(), path)
}
