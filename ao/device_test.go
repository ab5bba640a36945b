package ao

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/goao/internal/aotest"
	"github.com/ik5/goao/internal/native"
)

func openTestDevice(t *testing.T, fake *aotest.Backend, settings *Options) (*Ao, *Device) {
	t.Helper()

	ctx := newWith(fake)
	driver, err := ctx.DefaultDriver()
	if err != nil {
		t.Fatalf("DefaultDriver() error = %v", err)
	}
	dev, err := ctx.OpenLive(driver, DefaultFormat(), settings)
	if err != nil {
		t.Fatalf("OpenLive() error = %v", err)
	}
	return ctx, dev
}

func TestOpenLive_NilSettingsCrossAsNullList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings *Options
	}{
		{"nil settings", nil},
		{"empty settings", &Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := aotest.New()
			_, dev := openTestDevice(t, fake, tt.settings)
			defer dev.Close()

			if len(fake.OpenOptions) != 1 {
				t.Fatalf("OpenLive called %d times, want 1", len(fake.OpenOptions))
			}
			if fake.OpenOptions[0] != 0 {
				t.Errorf("options list = %#x, want null", fake.OpenOptions[0])
			}
			if fake.FreeCalls != 0 {
				t.Errorf("FreeCalls = %d, want 0 for an empty list", fake.FreeCalls)
			}
		})
	}
}

func TestOpenLive_OptionsCrossAndFreeOnce(t *testing.T) {
	t.Parallel()

	fake := aotest.New()

	opts := &Options{}
	opts.Append("id", "1")
	opts.Append("dev", "default")

	_, dev := openTestDevice(t, fake, opts)
	defer dev.Close()

	if len(fake.Appended) != 2 {
		t.Fatalf("appended %d pairs, want 2", len(fake.Appended))
	}
	if fake.Appended[0] != (native.Option{Key: "id", Value: "1"}) {
		t.Errorf("first pair = %+v", fake.Appended[0])
	}

	list := fake.OpenOptions[0]
	if list == 0 {
		t.Fatal("open received a null options list after two appends")
	}
	if fake.FreeCalls != 1 {
		t.Errorf("FreeCalls = %d, want 1", fake.FreeCalls)
	}
	if fake.FreedLists[list] != 1 {
		t.Errorf("list freed %d times, want 1", fake.FreedLists[list])
	}

	// The builder itself holds no native resource; reusing it for a
	// second open builds and frees a fresh list.
	ctx2 := newWith(fake)
	driver, _ := ctx2.DefaultDriver()
	dev2, err := ctx2.OpenLive(driver, DefaultFormat(), opts)
	if err != nil {
		t.Fatalf("second OpenLive() error = %v", err)
	}
	defer dev2.Close()

	if fake.FreeCalls != 2 {
		t.Errorf("FreeCalls = %d, want 2 after a second open", fake.FreeCalls)
	}
}

func TestOpenLive_FailureLeavesNothing(t *testing.T) {
	t.Parallel()

	fake := aotest.NewFailingOpen(native.EOPENDEVICE)
	ctx := newWith(fake)

	driver, err := ctx.DefaultDriver()
	if err != nil {
		t.Fatalf("DefaultDriver() error = %v", err)
	}

	opts := &Options{}
	opts.Append("id", "9")

	dev, err := ctx.OpenLive(driver, DefaultFormat(), opts)
	if dev != nil {
		t.Fatal("OpenLive() returned a device for a null native handle")
	}
	if !errors.Is(err, ErrOpenDevice) {
		t.Errorf("OpenLive() error = %v, want ErrOpenDevice", err)
	}

	// Nothing to clean up: no close was issued for the failed attempt,
	// and the transient option list was still freed exactly once.
	if fake.CloseCalls != 0 {
		t.Errorf("CloseCalls = %d, want 0", fake.CloseCalls)
	}
	if fake.FreeCalls != 1 {
		t.Errorf("FreeCalls = %d, want 1", fake.FreeCalls)
	}
	if fake.LiveDevices() != 0 {
		t.Errorf("LiveDevices() = %d, want 0", fake.LiveDevices())
	}
}

func TestOpenLive_ErrnoVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		errno int
		want  Errno
	}{
		{"bad format", native.EBADFORMAT, ErrBadFormat},
		{"device busy", native.EOPENDEVICE, ErrOpenDevice},
		{"not live", native.ENOTLIVE, ErrNotLive},
		{"bad option", native.EBADOPTION, ErrBadOption},
		{"catch-all", native.EFAIL, ErrFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := aotest.NewFailingOpen(tt.errno)
			ctx := newWith(fake)
			driver, _ := ctx.DefaultDriver()

			_, err := ctx.OpenLive(driver, DefaultFormat(), nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("OpenLive() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDevice_Play(t *testing.T) {
	t.Parallel()

	fake := aotest.New()
	_, dev := openTestDevice(t, fake, nil)
	defer dev.Close()

	pcm := []byte{0x00, 0x01, 0x02, 0x03}
	dev.Play(pcm)

	if len(fake.Played) != 1 {
		t.Fatalf("Played %d buffers, want 1", len(fake.Played))
	}
	if !bytes.Equal(fake.Played[0], pcm) {
		t.Errorf("Played = %v, want %v", fake.Played[0], pcm)
	}
}

func TestDevice_PlayEmptyBuffer(t *testing.T) {
	t.Parallel()

	fake := aotest.New()
	_, dev := openTestDevice(t, fake, nil)
	defer dev.Close()

	// Must neither panic nor touch a null handle.
	dev.Play(nil)
	dev.Play([]byte{})

	if fake.InvalidPlays != 0 {
		t.Errorf("InvalidPlays = %d, want 0", fake.InvalidPlays)
	}
}

func TestDevice_CloseExactlyOnce(t *testing.T) {
	t.Parallel()

	fake := aotest.New()
	_, dev := openTestDevice(t, fake, nil)

	for i := 0; i < 3; i++ {
		if err := dev.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	}

	if fake.CloseCalls != 1 {
		t.Errorf("CloseCalls = %d, want 1 after repeated Close", fake.CloseCalls)
	}
	if fake.InvalidCloses != 0 {
		t.Errorf("InvalidCloses = %d, want 0", fake.InvalidCloses)
	}
}

func TestDevice_PlayAfterClosePanics(t *testing.T) {
	t.Parallel()

	fake := aotest.New()
	_, dev := openTestDevice(t, fake, nil)
	if err := dev.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Play() did not panic on a closed device")
		}
	}()
	dev.Play([]byte{0x00})
}
