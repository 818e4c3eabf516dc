package domain

import "sort"

// ManufacturerFees are the captive lender's fees for a make.
type ManufacturerFees struct {
	AcquisitionFee float64 `yaml:"acquisition_fee" json:"acquisitionFee"`
	DispositionFee float64 `yaml:"disposition_fee" json:"dispositionFee"`
}

// ManufacturerFeeEntry is one row of a FeeTable.
type ManufacturerFeeEntry struct {
	Manufacturer   string  `json:"manufacturer"`
	AcquisitionFee float64 `json:"acquisitionFee"`
	DispositionFee float64 `json:"dispositionFee"`
}

// FeeTable maps an exact, case-sensitive manufacturer name to its fees.
// A loaded table is read-only and may be shared between goroutines.
type FeeTable map[string]ManufacturerFees

// LookupManufacturerFees returns the fees for name, if the table knows it.
func (t FeeTable) LookupManufacturerFees(name string) (ManufacturerFees, bool) {
	if name == "" {
		return ManufacturerFees{}, false
	}
	fees, ok := t[name]
	return fees, ok
}

// Entries lists the table sorted by manufacturer name.
func (t FeeTable) Entries() []ManufacturerFeeEntry {
	entries := make([]ManufacturerFeeEntry, 0, len(t))
	for name, fees := range t {
		entries = append(entries, ManufacturerFeeEntry{
			Manufacturer:   name,
			AcquisitionFee: fees.AcquisitionFee,
			DispositionFee: fees.DispositionFee,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Manufacturer < entries[j].Manufacturer
	})
	return entries
}

var defaultFees = FeeTable{
	"Acura":         {AcquisitionFee: 595, DispositionFee: 350},
	"Audi":          {AcquisitionFee: 895, DispositionFee: 495},
	"BMW":           {AcquisitionFee: 925, DispositionFee: 350},
	"Chevrolet":     {AcquisitionFee: 695, DispositionFee: 395},
	"Ford":          {AcquisitionFee: 645, DispositionFee: 395},
	"GMC":           {AcquisitionFee: 695, DispositionFee: 395},
	"Honda":         {AcquisitionFee: 595, DispositionFee: 350},
	"Hyundai":       {AcquisitionFee: 650, DispositionFee: 400},
	"Jeep":          {AcquisitionFee: 695, DispositionFee: 395},
	"Kia":           {AcquisitionFee: 650, DispositionFee: 400},
	"Lexus":         {AcquisitionFee: 795, DispositionFee: 350},
	"Mazda":         {AcquisitionFee: 650, DispositionFee: 350},
	"Mercedes-Benz": {AcquisitionFee: 1095, DispositionFee: 595},
	"Nissan":        {AcquisitionFee: 700, DispositionFee: 395},
	"Subaru":        {AcquisitionFee: 595, DispositionFee: 350},
	"Tesla":         {AcquisitionFee: 695, DispositionFee: 395},
	"Toyota":        {AcquisitionFee: 650, DispositionFee: 350},
	"Volkswagen":    {AcquisitionFee: 675, DispositionFee: 395},
	"Volvo":         {AcquisitionFee: 1095, DispositionFee: 495},
}

// DefaultFeeTable returns a copy of the built-in manufacturer fee table.
func DefaultFeeTable() FeeTable {
	table := make(FeeTable, len(defaultFees))
	for name, fees := range defaultFees {
		table[name] = fees
	}
	return table
}
