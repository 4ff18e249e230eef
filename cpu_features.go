package wproj

import (
	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction set extensions relevant to the
// vector backends.
type CPUFeatures struct {
	HasSSE4   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool
}

var cpuFeatures CPUFeatures

func init() {
	cpuFeatures = CPUFeatures{
		HasSSE4:   cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:    cpu.X86.HasAVX,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
		HasFMA:    cpu.X86.HasFMA,
	}
}

// Features returns the detected CPU feature snapshot.
func Features() CPUFeatures {
	return cpuFeatures
}

// String summarises the detected features for diagnostic logging.
func (f CPUFeatures) String() string {
	s := "scalar"
	switch {
	case f.HasAVX512:
		s = "avx512"
	case f.HasAVX2:
		s = "avx2"
	case f.HasAVX:
		s = "avx"
	case f.HasSSE4:
		s = "sse4"
	}
	if f.HasFMA {
		s += "+fma"
	}
	return s
}
