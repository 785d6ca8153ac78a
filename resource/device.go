// Package resource creates buffers and images on a wgpu HAL device.
//
// Buffers and images created here implement the read-only query interfaces
// of the transfer package, so every copy between them can be checked with
// transfer.CheckCopyBufferImage before it is recorded.
//
// Resources are immutable after creation except for their destroyed flag.
// Queries remain valid after Destroy; only the HAL handle is released.
package resource

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texcopy"
	"github.com/gogpu/texcopy/transfer"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// Device errors.
var (
	// ErrNilDevice is returned when a resource is created without a device.
	ErrNilDevice = errors.New("resource: device is nil")

	// ErrBackendUnavailable is returned when the requested HAL backend is not
	// compiled in.
	ErrBackendUnavailable = errors.New("resource: backend not available")

	// ErrNoAdapter is returned when a backend exposes no adapters.
	ErrNoAdapter = errors.New("resource: no GPU adapters found")

	// ErrDestroyed is returned when operating on a destroyed resource.
	ErrDestroyed = errors.New("resource: resource has been destroyed")
)

// nextDeviceID hands out process-unique device identities.
var nextDeviceID atomic.Uint64

// Device is a logical GPU device together with its queue.
//
// Every Device carries a process-unique [transfer.DeviceID]. Resources record
// the ID of the device that created them, which is what the copy validator
// compares.
type Device struct {
	id transfer.DeviceID

	device hal.Device
	queue  hal.Queue

	// instance is owned by the Device when it opened the adapter itself.
	instance hal.Instance
	adapter  string

	mu        sync.Mutex
	destroyed bool
}

// NewDevice wraps an existing HAL device and queue. The caller keeps
// ownership: Destroy releases nothing for wrapped devices.
func NewDevice(device hal.Device, queue hal.Queue) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Device{
		id:     transfer.DeviceID(nextDeviceID.Add(1)),
		device: device,
		queue:  queue,
	}, nil
}

// Open opens the first suitable adapter of a HAL backend, preferring
// discrete and integrated GPUs.
func Open(backend gputypes.Backend) (*Device, error) {
	b, ok := hal.GetBackend(backend)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, backend)
	}
	instance, err := b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	return openInstance(instance)
}

// OpenNoop opens a device on the wgpu noop backend. Commands are accepted and
// discarded, which makes it suitable for tests and dry runs.
func OpenNoop() (*Device, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("create noop instance: %w", err)
	}
	return openInstance(instance)
}

func openInstance(instance hal.Instance) (*Device, error) {
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	d := &Device{
		id:       transfer.DeviceID(nextDeviceID.Add(1)),
		device:   openDev.Device,
		queue:    openDev.Queue,
		instance: instance,
		adapter:  selected.Info.Name,
	}
	texcopy.Logger().Info("resource: device opened", "adapter", d.adapter, "id", d.id)
	return d, nil
}

// ID returns the process-unique identity of the device.
func (d *Device) ID() transfer.DeviceID {
	return d.id
}

// AdapterName returns the adapter name, or "" for wrapped devices.
func (d *Device) AdapterName() string {
	return d.adapter
}

// HAL returns the underlying HAL device.
func (d *Device) HAL() hal.Device {
	return d.device
}

// Queue returns the device queue.
func (d *Device) Queue() hal.Queue {
	return d.queue
}

// IsDestroyed returns true if the device has been destroyed.
func (d *Device) IsDestroyed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.destroyed
}

// Destroy releases the device and instance if this Device opened them.
// Calling Destroy more than once is a no-op.
func (d *Device) Destroy() {
	d.mu.Lock()
	if d.destroyed {
		d.mu.Unlock()
		return
	}
	d.destroyed = true
	d.mu.Unlock()

	if d.instance == nil {
		return
	}
	d.device.Destroy()
	d.instance.Destroy()
}

// CheckAlive returns ErrNilDevice or ErrDestroyed when d cannot create
// resources or record work.
func (d *Device) CheckAlive() error {
	if d == nil || d.device == nil {
		return ErrNilDevice
	}
	if d.IsDestroyed() {
		return fmt.Errorf("%w: device %d", ErrDestroyed, d.id)
	}
	return nil
}
