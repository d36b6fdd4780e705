// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"bufio"
	"debug/elf"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"github.com/buildkite/shellwords"
)

const usageString = `ELF to Game Boy Advance ROM converter.

Usage: %s [flags] <elffile>

`

var (
	flags = flag.NewFlagSet("rom", flag.ExitOnError)

	infile string
	title  = flags.String("title", "", "game title, up to 12 characters")
	code   = flags.String("code", "AGBE", "game code of the header")
	maker  = flags.String("maker", "01", "maker code of the header")
	logo   = flags.String("logo", "", "file with logo data for the header")
	run    = flags.String("run", "", "Run the ROM with command")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "rom")
	flags.PrintDefaults()
}

func objcopy(dst io.WriterAt, src *elf.File) error {
	for _, s := range src.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return err
		}

		if s.Addr < romBase+headerSize {
			return errors.New("data inside rom header")
		}

		_, err = dst.WriteAt(data, int64(s.Addr-romBase))
		if err != nil {
			return err
		}
	}

	return nil
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	outfile, _ := strings.CutSuffix(infile, ".elf")
	outfile += ".gba"

	elffile, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer elffile.Close()

	var logodata []byte
	if *logo != "" {
		logodata, err = os.ReadFile(*logo)
		if err != nil {
			log.Fatalln(err)
		}
	}

	rom, err := os.CreateTemp("", "rom")
	if err != nil {
		log.Fatalln(err)
	}
	defer rom.Close()

	err = objcopy(rom, elffile)
	if err != nil {
		log.Fatalln("objcopy:", err)
	}

	if *title == "" {
		*title = strings.TrimSuffix(outfile, ".gba")
	}
	err = writeROMHeader(rom, header{
		entry: uint32(elffile.Entry),
		title: *title,
		code:  *code,
		maker: *maker,
		logo:  logodata,
	})
	if err != nil {
		log.Fatalln("write rom header:", err)
	}

	out, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer out.Close()
	rom.Seek(0, io.SeekStart)
	_, err = io.Copy(out, rom)
	if err != nil {
		log.Fatalln(err)
	}

	if *run != "" {
		runROM(*run, outfile)
	}
}

func runROM(cmdpath, rompath string) {
	args, err := shellwords.Split(cmdpath)
	if err != nil {
		log.Fatal("run:", err)
	}
	args = append(args, rompath)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	processGroupEnable(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Fatal("open stdout:", err)
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)

	err = cmd.Start()
	if err != nil {
		log.Fatal("start command:", err)
	}

	go func() {
		<-sigintr
		stdout.Close()
		err := processGroupKill(cmd)
		if err != nil {
			log.Println(err)
		}
	}()

	scanner := bufio.NewScanner(stdout)
	exiting := false
	exitcode := 0
	for scanner.Scan() {
		log.Println(scanner.Text())
		if exiting {
			continue
		}
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
			fallthrough
		case line == "FAIL":
			exitcode = 1
			fallthrough
		case line == "PASS":
			exiting = true
			go func() {
				// give panic() time to print the stacktrace
				time.Sleep(500 * time.Millisecond)
				stdout.Close()
				err := processGroupKill(cmd)
				if err != nil {
					log.Println(err)
				}
			}()
		}
	}
	cmd.Wait()
	os.Exit(exitcode)
}
