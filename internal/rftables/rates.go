package rftables

// baseRate20MHz is the per-stream PHY rate in Mbps at 20 MHz / 800 ns guard
// interval, indexed by MCS. WiFi5 extends WiFi4's table with MCS8/9; WiFi6
// uses HE-scaled values; WiFi7 appends MCS12/13 to the WiFi6 table.
var baseRate20MHz = map[WifiStandard][]float64{
	WiFi4: {6.5, 13.0, 19.5, 26.0, 39.0, 52.0, 58.5, 65.0},
	WiFi5: {6.5, 13.0, 19.5, 26.0, 39.0, 52.0, 58.5, 65.0, 78.0, 86.7},
	WiFi6: {8.6, 17.2, 25.8, 34.4, 51.5, 68.8, 77.4, 86.0, 103.2, 114.7, 129.0, 143.4},
	WiFi7: {8.6, 17.2, 25.8, 34.4, 51.5, 68.8, 77.4, 86.0, 103.2, 114.7, 129.0, 143.4, 154.9, 172.1},
}

// BaseRateMbps returns the per-stream, 20 MHz, 800 ns GI base rate for
// (standard, mcs). ok is false when mcs is out of range for standard.
func BaseRateMbps(standard WifiStandard, mcs int) (rate float64, ok bool) {
	table, known := baseRate20MHz[standard]
	if !known || mcs < 0 || mcs >= len(table) {
		return 0, false
	}
	return table[mcs], true
}

// requiredSNRBase is the per-MCS required SNR in dB at 20 MHz / NSS 1,
// including the ~3 dB PER margin. WiFi5 and WiFi7 extend the shorter
// generation's table with their additional MCS indices.
var requiredSNRBase = map[WifiStandard][]float64{
	WiFi4: {2.0, 5.0, 9.0, 11.0, 15.0, 18.0, 20.0, 21.0},
	WiFi5: {2.0, 5.0, 9.0, 11.0, 15.0, 18.0, 20.0, 21.0, 23.0, 25.0},
	WiFi6: {2.0, 5.0, 8.0, 10.0, 11.0, 14.0, 18.0, 20.0, 23.0, 25.0, 29.0, 33.0},
	WiFi7: {2.0, 5.0, 8.0, 10.0, 11.0, 14.0, 18.0, 20.0, 23.0, 25.0, 29.0, 33.0, 36.0, 39.0},
}

// RequiredSNRBaseDB returns the unadjusted (20 MHz, NSS 1) required SNR for
// (standard, mcs). ok is false when mcs is out of range for standard.
func RequiredSNRBaseDB(standard WifiStandard, mcs int) (snr float64, ok bool) {
	table, known := requiredSNRBase[standard]
	if !known || mcs < 0 || mcs >= len(table) {
		return 0, false
	}
	return table[mcs], true
}
