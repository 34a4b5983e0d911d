// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package metric

import (
	"fmt"
	"time"

	"github.com/sysprobe-io/sysprobe/lib/clock"
)

// DefaultSampleSeconds is the sampling window used when a caller has
// no opinion. One second is long enough for jiffy counters to move on
// a busy host and short enough for interactive use.
const DefaultSampleSeconds = 1

// Sampler performs two-point counter sampling. Each method reads a
// counter snapshot, blocks for the requested number of seconds on the
// injected clock, reads again, and reports per-device deltas.
//
// Methods are safe for concurrent use. Each call is independent; the
// Sampler retains nothing between calls.
type Sampler struct {
	source Source
	clock  clock.Clock
}

// NewSampler wires a Sampler from explicit parts. Tests pass a fake
// source and a fake clock; production callers normally use [New].
func NewSampler(source Source, clk clock.Clock) *Sampler {
	return &Sampler{source: source, clock: clk}
}

// New returns a Sampler for the current platform backed by the real
// clock. It fails with [ErrUnsupportedPlatform] where no sampling
// backend exists.
func New() (*Sampler, error) {
	source, err := NewSource()
	if err != nil {
		return nil, err
	}
	return NewSampler(source, clock.Real()), nil
}

// CPUUsage samples CPU usage over a window of the given number of
// seconds. The result has one entry per core present in both
// snapshots, keyed by core index, plus the [DeviceTotal] aggregate.
// A seconds value of zero is legal and reports an idle window.
func (s *Sampler) CPUUsage(seconds int) (CPUUsage, error) {
	if err := validateSeconds(seconds); err != nil {
		return nil, err
	}
	before, err := s.source.CPUCounters()
	if err != nil {
		return nil, err
	}
	s.sleep(seconds)
	after, err := s.source.CPUCounters()
	if err != nil {
		return nil, err
	}
	return cpuUsageBetween(before, after), nil
}

// DiskThroughput samples block device throughput over a window of the
// given number of seconds. Devices matching policy are excluded. The
// result has one entry per device present in both snapshots plus the
// [DeviceTotal] sum, which is present even when no devices survive.
func (s *Sampler) DiskThroughput(seconds int, policy DevicePolicy) (DiskUsage, error) {
	if err := validateSeconds(seconds); err != nil {
		return nil, err
	}
	before, err := s.source.DiskCounters(policy)
	if err != nil {
		return nil, err
	}
	s.sleep(seconds)
	after, err := s.source.DiskCounters(policy)
	if err != nil {
		return nil, err
	}
	return diskUsageBetween(before, after), nil
}

// NetworkThroughput samples interface throughput over a window of the
// given number of seconds. Interfaces matching policy are excluded.
// The result has one entry per interface present in both snapshots
// plus the [DeviceTotal] sum of the rounded per-interface figures,
// present even when no interfaces survive.
func (s *Sampler) NetworkThroughput(seconds int, policy DevicePolicy) (NetworkUsage, error) {
	if err := validateSeconds(seconds); err != nil {
		return nil, err
	}
	before, err := s.source.NetworkCounters(policy)
	if err != nil {
		return nil, err
	}
	s.sleep(seconds)
	after, err := s.source.NetworkCounters(policy)
	if err != nil {
		return nil, err
	}
	return netUsageBetween(before, after), nil
}

// Usage bundles one sampling pass over every counter family.
type Usage struct {
	CPU     CPUUsage
	Disk    DiskUsage
	Network NetworkUsage
}

// Sample measures all three counter families over one shared window:
// every family's first snapshot is read, the Sampler sleeps once, and
// every family's second snapshot is read. Per-family results are
// identical to what CPUUsage, DiskThroughput, and NetworkThroughput
// report individually, without paying for three windows.
func (s *Sampler) Sample(seconds int, disk, network DevicePolicy) (Usage, error) {
	if err := validateSeconds(seconds); err != nil {
		return Usage{}, err
	}
	before, err := s.readAll(disk, network)
	if err != nil {
		return Usage{}, err
	}
	s.sleep(seconds)
	after, err := s.readAll(disk, network)
	if err != nil {
		return Usage{}, err
	}
	return Usage{
		CPU:     cpuUsageBetween(before.cpu, after.cpu),
		Disk:    diskUsageBetween(before.disk, after.disk),
		Network: netUsageBetween(before.net, after.net),
	}, nil
}

type counterSet struct {
	cpu  CPUSnapshot
	disk DiskSnapshot
	net  NetSnapshot
}

func (s *Sampler) readAll(disk, network DevicePolicy) (counterSet, error) {
	var set counterSet
	var err error
	if set.cpu, err = s.source.CPUCounters(); err != nil {
		return counterSet{}, err
	}
	if set.disk, err = s.source.DiskCounters(disk); err != nil {
		return counterSet{}, err
	}
	if set.net, err = s.source.NetworkCounters(network); err != nil {
		return counterSet{}, err
	}
	return set, nil
}

func cpuUsageBetween(before, after CPUSnapshot) CPUUsage {
	usage := make(CPUUsage)
	for key, beforeCounters := range before {
		afterCounters, ok := after[key]
		if !ok {
			// Core offlined mid-sample. No coherent delta exists.
			continue
		}
		usage[key] = cpuUsagePercent(beforeCounters, afterCounters)
	}
	if _, ok := usage[DeviceTotal]; !ok {
		usage[DeviceTotal] = 0
	}
	return usage
}

func diskUsageBetween(before, after DiskSnapshot) DiskUsage {
	usage := make(DiskUsage)
	var total DiskIO
	for device, beforeCounters := range before {
		afterCounters, ok := after[device]
		if !ok {
			// Device detached mid-sample.
			continue
		}
		delta := diskDelta(beforeCounters, afterCounters)
		usage[device] = delta
		total.ReadMB += delta.ReadMB
		total.WriteMB += delta.WriteMB
	}
	usage[DeviceTotal] = total
	return usage
}

func netUsageBetween(before, after NetSnapshot) NetworkUsage {
	usage := make(NetworkUsage)
	var total NetIO
	for device, beforeCounters := range before {
		afterCounters, ok := after[device]
		if !ok {
			// Interface removed mid-sample.
			continue
		}
		delta := netDelta(beforeCounters, afterCounters)
		usage[device] = delta
		total.DownloadMB += delta.DownloadMB
		total.UploadMB += delta.UploadMB
	}
	usage[DeviceTotal] = total
	return usage
}

func (s *Sampler) sleep(seconds int) {
	if seconds == 0 {
		return
	}
	s.clock.Sleep(time.Duration(seconds) * time.Second)
}

func validateSeconds(seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("sample window must be a whole number of seconds >= 0, got %d", seconds)
	}
	return nil
}
