package main

import "flag"
import "fmt"
import "os"

import humanize "github.com/dustin/go-humanize"

import "github.com/superjamie/lcl/array"

var options struct {
	layers int64
	rows   int64
	cols   int64
	tsize  int64
}

func argParse() {
	flag.Int64Var(&options.layers, "layers", 0,
		"number of layers, 0 for a 2D array")
	flag.Int64Var(&options.rows, "rows", 1024,
		"number of rows")
	flag.Int64Var(&options.cols, "cols", 1024,
		"number of columns")
	flag.Int64Var(&options.tsize, "tsize", 8,
		"element size in bytes")
	flag.Parse()
}

func main() {
	argParse()
	if options.layers == 0 {
		tellayout2()
	} else {
		tellayout3()
	}
}

func tellayout2() {
	table, data, total, err := array.Sizeof2(
		options.rows, options.cols, options.tsize)
	if err != nil {
		fmt.Printf("%vx%v tsize %v: %v\n",
			options.rows, options.cols, options.tsize, err)
		os.Exit(1)
	}
	fmt.Printf("2D array %vx%v, %v byte elements\n",
		options.rows, options.cols, options.tsize)
	fmt.Printf("  pointer table %10v bytes at offset 0\n", table)
	fmt.Printf("  data region   %10v bytes at offset %v\n", data, table)
	fmt.Printf("  total %v (%v)\n", total, humanize.Bytes(uint64(total)))
}

func tellayout3() {
	tables, data, total, err := array.Sizeof3(
		options.layers, options.rows, options.cols, options.tsize)
	if err != nil {
		fmt.Printf("%vx%vx%v tsize %v: %v\n",
			options.layers, options.rows, options.cols, options.tsize, err)
		os.Exit(1)
	}
	fmt.Printf("3D array %vx%vx%v, %v byte elements\n",
		options.layers, options.rows, options.cols, options.tsize)
	fmt.Printf("  pointer tables %10v bytes at offset 0\n", tables)
	fmt.Printf("  data region    %10v bytes at offset %v\n", data, tables)
	fmt.Printf("  total %v (%v)\n", total, humanize.Bytes(uint64(total)))
}
