package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/dmitrymomot/spaserver/core/logger"
)

var bannerColor = color.New(color.FgGreen, color.Bold)

// printBanner announces the bound address in the familiar
// "Serving HTTP on HOST port PORT (URL) ..." form.
func printBanner(w io.Writer, addr net.Addr) {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		host, port = addr.String(), ""
	}

	url := "http://" + net.JoinHostPort(host, port) + "/"
	bannerColor.Fprintf(w, "Serving HTTP on %s port %s (%s) ...\n", host, port, url)
}

func logStarted(ctx context.Context, log *slog.Logger, addr net.Addr, root, index string, size int64) {
	attrs := []slog.Attr{
		logger.Component("server"),
		logger.Event("started"),
		logger.Addr(addr.String()),
		logger.Root(root),
		logger.File(index),
	}
	if size >= 0 {
		attrs = append(attrs, logger.Size(humanize.Bytes(uint64(size))))
	}
	log.LogAttrs(ctx, slog.LevelInfo, "server started", attrs...)
}

// indexSize reports the size of the fallback document, or -1 when it is missing.
func indexSize(root *os.Root, index string) int64 {
	info, err := root.Stat(strings.TrimLeft(index, "/"))
	if err != nil || !info.Mode().IsRegular() {
		return -1
	}
	return info.Size()
}
