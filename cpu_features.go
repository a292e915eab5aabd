package crcforge

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/LynnColeArt/crcforge/gf2"
)

// CPUFeatures tracks the host capabilities that decide the carry-less
// multiplier path, alongside the path the build actually dispatched to.
type CPUFeatures struct {
	Brand         string
	PhysicalCores int
	LogicalCores  int

	HasCLMUL  bool // x86 PCLMULQDQ
	HasVCLMUL bool // x86 VPCLMULQDQ
	HasPMULL  bool // arm64 polynomial multiply

	// MulPath names the multiplier implementation in use; Accelerated
	// reports whether it is an instruction rather than the bit-serial
	// fallback.
	MulPath     string
	Accelerated bool
}

// DetectCPU probes the host CPU and the active multiplier dispatch.
func DetectCPU() CPUFeatures {
	return CPUFeatures{
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		HasCLMUL:      cpuid.CPU.Supports(cpuid.CLMUL),
		HasVCLMUL:     cpuid.CPU.Supports(cpuid.VPCLMULQDQ),
		HasPMULL:      cpuid.CPU.Supports(cpuid.PMULL),
		MulPath:       gf2.Path(),
		Accelerated:   gf2.Accelerated(),
	}
}

// String returns the summary the -cpuinfo flag prints.
func (f CPUFeatures) String() string {
	var features []string
	if f.HasCLMUL {
		features = append(features, "PCLMULQDQ")
	}
	if f.HasVCLMUL {
		features = append(features, "VPCLMULQDQ")
	}
	if f.HasPMULL {
		features = append(features, "PMULL")
	}

	list := "none"
	if len(features) > 0 {
		list = strings.Join(features, ", ")
	}

	return fmt.Sprintf("%s (%d cores, %d threads)\ncarry-less multiply features: %s\nmultiplier path: %s",
		f.Brand, f.PhysicalCores, f.LogicalCores, list, f.MulPath)
}
