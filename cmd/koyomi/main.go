// Command koyomi prints a Japanese calendar for a month or a year: each date
// with its weekday, era year, sexagenary year and national holiday.
//
// Usage:
//
//	koyomi --year=2024 --month=5
//	koyomi --year=2024 --holidays-only --format=csv --encoding=shift_jis > 2024.csv
//
// Every flag can also be set through the environment with the KOYOMI_
// prefix, e.g. KOYOMI_FORMAT=csv.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	logger "log"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	koyomi "github.com/rabitt1ove/jp-koyomi"
)

var build = "develop"

const prefix = "KOYOMI"

var errUsage = errors.New("invalid arguments")

type config struct {
	conf.Version
	Year         int    `conf:"default:0,help:Gregorian year to print (0 means the current year in JST)"`
	Month        int    `conf:"default:0,help:month to print from 1 to 12 (0 prints the whole year)"`
	Format       string `conf:"default:text,help:output format: text or csv"`
	Encoding     string `conf:"default:utf-8,help:output encoding: utf-8 or shift_jis"`
	HolidaysOnly bool   `conf:"default:false,help:print only holidays"`
	Verbose      bool   `conf:"default:false,help:log the effective configuration"`
}

func main() {
	log := logger.New(os.Stderr, "KOYOMI : ", logger.LstdFlags)
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, log *logger.Logger) error {
	var cfg config
	cfg.Version.SVN = build
	cfg.Version.Desc = "Print Japanese calendar facts and national holidays"
	if err := conf.Parse(args, prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Fprintln(stdout, usage)
			return nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config version: %w", err)
			}
			fmt.Fprintln(stdout, version)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Verbose {
		out, err := conf.String(&cfg)
		if err != nil {
			return fmt.Errorf("generating config for output: %w", err)
		}
		log.Printf("main: Config :\n%v\n", out)
	}

	if cfg.Year == 0 {
		cfg.Year = koyomi.DateOf(time.Now()).Year
	}
	if cfg.Month < 0 || cfg.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", errUsage, cfg.Month)
	}

	w, closeFn, err := encodeWriter(stdout, cfg.Encoding)
	if err != nil {
		return err
	}

	days := koyomi.YearOf(cfg.Year)
	if cfg.Month != 0 {
		days = koyomi.MonthOf(cfg.Year, time.Month(cfg.Month))
	}
	if cfg.HolidaysOnly {
		days = holidaysOnly(days)
	}

	switch cfg.Format {
	case "text":
		err = writeText(w, days)
	case "csv":
		err = writeCSV(w, days)
	default:
		err = fmt.Errorf("%w: unknown format %q", errUsage, cfg.Format)
	}
	if cerr := closeFn(); err == nil && cerr != nil {
		err = fmt.Errorf("flushing output: %w", cerr)
	}
	return err
}

// encodeWriter wraps w so that UTF-8 output is converted to the requested
// encoding. The returned close function flushes any buffered bytes.
func encodeWriter(w io.Writer, encoding string) (io.Writer, func() error, error) {
	switch encoding {
	case "utf-8", "utf8":
		return w, func() error { return nil }, nil
	case "shift_jis", "sjis":
		tw := transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())
		return tw, tw.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: unknown encoding %q", errUsage, encoding)
}

func holidaysOnly(days iter.Seq[koyomi.JapaneseDate]) iter.Seq[koyomi.JapaneseDate] {
	return func(yield func(koyomi.JapaneseDate) bool) {
		for jd := range days {
			if jd.IsHoliday() && !yield(jd) {
				return
			}
		}
	}
}

func writeText(w io.Writer, days iter.Seq[koyomi.JapaneseDate]) error {
	for jd := range days {
		line := fmt.Sprintf("%s(%s) %s %s", jd.Date, jd.WeekdayName(), eraLabel(jd), jd.Sexagenary)
		if jd.IsHoliday() {
			line += " " + jd.HolidayName()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

var csvHeader = []string{"日付", "曜日", "和暦", "干支", "祝日", "holiday"}

func writeCSV(w io.Writer, days iter.Seq[koyomi.JapaneseDate]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for jd := range days {
		rec := []string{
			jd.Date.String(),
			jd.WeekdayName(),
			eraLabel(jd),
			jd.Sexagenary.Name(),
			jd.HolidayName(),
			jd.Holiday.English(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func eraLabel(jd koyomi.JapaneseDate) string {
	if s := jd.Era.String(); s != "" {
		return s
	}
	return "-"
}
