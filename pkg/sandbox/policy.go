// Package sandbox launches untrusted external tool servers inside
// containers with dropped capabilities and resource caps.
package sandbox

import "github.com/praxislabs/praxis/pkg/models"

// Policy is the isolation profile applied to a sandboxed server.
type Policy struct {
	Name string
	// NetworkMode is the docker network ("none" or "bridge").
	NetworkMode string
	// CPUs is the CPU quota as a fraction of one core.
	CPUs float64
	// MemoryBytes caps container memory.
	MemoryBytes int64
	// PidsLimit caps the number of processes.
	PidsLimit int
	// TmpfsSize is the size of the writable /tmp mount.
	TmpfsSize string
}

// DefaultPolicy isolates user-added servers: no network at all.
func DefaultPolicy() Policy {
	return Policy{
		Name:        "DEFAULT_POLICY",
		NetworkMode: "none",
		CPUs:        0.5,
		MemoryBytes: 512 << 20,
		PidsLimit:   50,
		TmpfsSize:   "64m",
	}
}

// VerifiedPolicy allows network access for verified servers while keeping
// the resource caps.
func VerifiedPolicy() Policy {
	p := DefaultPolicy()
	p.Name = "VERIFIED_POLICY"
	p.NetworkMode = "bridge"
	return p
}

// PolicyFor picks the isolation profile for a trust level.
func PolicyFor(trust models.TrustLevel) Policy {
	if trust == models.TrustUserAdded {
		return DefaultPolicy()
	}
	return VerifiedPolicy()
}
