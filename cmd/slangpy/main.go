// Package main provides the SlangPy dispatch core CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jhelferty-nv/slangpy/device/webgpu"
	"github.com/jhelferty-nv/slangpy/internal/logger"
)

const version = "v0.1.0-dev"

func main() {
	logger.SetupFromEnv()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("SlangPy dispatch core %s\n", version)
			return
		case "adapters":
			listAdapters()
			return
		}
	}

	fmt.Println("SlangPy - GPU dispatch descriptors for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version     Show version")
	fmt.Println("  adapters    List WebGPU adapters")
}

func listAdapters() {
	adapters, err := webgpu.ListAdapters()
	if err != nil {
		fmt.Printf("WebGPU not available: %v\n", err)
		os.Exit(1)
	}

	for i, info := range adapters {
		fmt.Printf("Adapter %d: %s (%s)\n", i, info.Device, info.Vendor)
		fmt.Printf("  Architecture: %s\n", info.Architecture)
		fmt.Printf("  Driver: %s\n", info.Description)
		fmt.Printf("  Backend: %v\n", info.BackendType)
	}
}
