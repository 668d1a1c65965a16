// file: internals/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bantal_documents_created_total",
		Help: "Jumlah dokumen yang berhasil dibuat per jenis handler.",
	}, []string{"kind"})

	DocumentsFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bantal_documents_finalized_total",
		Help: "Jumlah dokumen yang berhasil difinalisasi per jenis handler.",
	}, []string{"kind"})

	ProjectsSpawned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bantal_projects_spawned_total",
		Help: "Jumlah pekerjaan yang dibuat dari finalisasi SPK.",
	}, []string{"cadence"})

	BlobVersionsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bantal_blob_versions_stored_total",
		Help: "Jumlah versi blob yang tersimpan per driver.",
	}, []string{"driver"})

	InstallmentsMarkedDue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bantal_installments_marked_due_total",
		Help: "Jumlah termin yang dipindah ke status due oleh cron.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bantal_http_request_duration_seconds",
		Help:    "Durasi request HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
