package route

import "github.com/katalvlaran/cgrouting/contact"

// refreshMetrics recomputes every cached aggregate from the full hop
// chain, mirroring DtnSim's Route::refresh_metrics (libcgr.cpp:122).
// Called by Append after every new hop.
func (r *Route) refreshMetrics() {
	hops := r.Hops()
	if len(hops) == 0 {
		return
	}

	r.toNode = hops[len(hops)-1].To
	r.nextNode = hops[0].To
	r.fromTime = hops[0].Start

	r.toTime = contact.Infinity
	r.confidence = 1
	r.bestDeliveryTime = 0
	for _, h := range hops {
		if h.End < r.toTime {
			r.toTime = h.End
		}
		r.confidence *= h.Confidence
		r.bestDeliveryTime = max64(r.bestDeliveryTime+h.OWLT, h.Start+h.OWLT)
	}

	r.volume = effectiveRouteVolume(hops)
}

// effectiveRouteVolume computes the bottleneck volume along hops: the
// minimum, over every hop, of that hop's effective volume limit — the
// most data the hop could forward given when the bundle's first byte
// could reach it and when its own and every successor's window closes.
//
// bundle_tx_time is fixed at 0, as in DtnSim's reference (libcgr.cpp:150):
// this computes the best-case route volume as an upper bound a caller
// later narrows by actual bundle size, not the volume available to one
// specific transmission.
func effectiveRouteVolume(hops []contact.Contact) int64 {
	// minSuccStop[i] = min(hops[i].End, hops[i+1].End, ..., hops[n-1].End),
	// computed once with a backward pass instead of the reference
	// implementation's O(n) inner scan per hop.
	minSuccStop := make([]int64, len(hops))
	minSuccStop[len(hops)-1] = hops[len(hops)-1].End
	for i := len(hops) - 2; i >= 0; i-- {
		minSuccStop[i] = hops[i].End
		if minSuccStop[i+1] < minSuccStop[i] {
			minSuccStop[i] = minSuccStop[i+1]
		}
	}

	minEffectiveVolume := contact.Infinity
	var prevLastByteArrTime int64
	for i, h := range hops {
		var firstByteTxTime int64
		if i == 0 {
			firstByteTxTime = h.Start
		} else {
			firstByteTxTime = max64(h.Start, prevLastByteArrTime)
		}
		const bundleTxTime = 0
		lastByteTxTime := firstByteTxTime + bundleTxTime
		lastByteArrTime := lastByteTxTime + h.OWLT
		prevLastByteArrTime = lastByteArrTime

		effectiveStopTime := h.End
		if minSuccStop[i] < effectiveStopTime {
			effectiveStopTime = minSuccStop[i]
		}
		effectiveDuration := effectiveStopTime - firstByteTxTime

		effectiveVolumeLimit := effectiveDuration * h.Rate
		if h.Volume < effectiveVolumeLimit {
			effectiveVolumeLimit = h.Volume
		}

		if effectiveVolumeLimit < minEffectiveVolume {
			minEffectiveVolume = effectiveVolumeLimit
		}
	}

	return minEffectiveVolume
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
