// Package metrics exports runtime activity to Prometheus.
package metrics

import (
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"net/http"
	"strconv"
	"time"
)

var _ firmware.Observer = (*Observer)(nil)

type Observer struct {
	registry *prometheus.Registry

	keyEvents    *prometheus.CounterVec
	layerChanges prometheus.Counter
	activeLayers prometheus.Gauge
	highestLayer prometheus.Gauge
	combos       *prometheus.CounterVec
}

// NewObserver registers the keymapd metrics on a registry of its own, labelled
// with the keyboard name.
func NewObserver(keyboard string) *Observer {
	labels := prometheus.Labels{"keyboard": keyboard}

	o := &Observer{
		registry: prometheus.NewRegistry(),
		keyEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "keymapd",
			Name:        "key_events_total",
			Help:        "Key events processed, by transition.",
			ConstLabels: labels,
		}, []string{"state"}),
		layerChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "keymapd",
			Name:        "layer_changes_total",
			Help:        "Changes of the active layer set.",
			ConstLabels: labels,
		}),
		activeLayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "keymapd",
			Name:        "active_layers",
			Help:        "Bitset of the enabled layers.",
			ConstLabels: labels,
		}),
		highestLayer: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "keymapd",
			Name:        "highest_layer",
			Help:        "Index of the highest enabled layer.",
			ConstLabels: labels,
		}),
		combos: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "keymapd",
			Name:        "combos_total",
			Help:        "Combos fired, by combo index.",
			ConstLabels: labels,
		}, []string{"combo"}),
	}

	o.registry.MustRegister(
		o.keyEvents,
		o.layerChanges,
		o.activeLayers,
		o.highestLayer,
		o.combos,
		collectors.NewGoCollector(),
	)

	return o
}

func (o *Observer) KeyEvent(pressed bool) {
	state := "released"
	if pressed {
		state = "pressed"
	}
	o.keyEvents.WithLabelValues(state).Inc()
}

func (o *Observer) LayerChanged(state keymap.LayerState) {
	o.layerChanges.Inc()
	o.activeLayers.Set(float64(state))
	o.highestLayer.Set(float64(state.Highest()))
}

func (o *Observer) ComboFired(index int) {
	o.combos.WithLabelValues(strconv.Itoa(index)).Inc()
}

func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (o *Observer) Serve(ctx context.Context, addr string, log *zap.SugaredLogger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", o.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("serving metrics", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve metrics: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shut down metrics server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics: %w", err)
	}
	return ctx.Err()
}
