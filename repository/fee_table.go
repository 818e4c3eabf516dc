package repository

import (
	"fmt"
	"os"

	"lease-calculator/domain"

	"gopkg.in/yaml.v3"
)

// feeTableFile is the on-disk layout:
//
//	manufacturers:
//	  Toyota:
//	    acquisition_fee: 650
//	    disposition_fee: 350
type feeTableFile struct {
	Manufacturers map[string]domain.ManufacturerFees `yaml:"manufacturers"`
}

// LoadFeeTable reads a manufacturer fee table from a YAML file.
func LoadFeeTable(filename string) (domain.FeeTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read fee table: %w", err)
	}
	return ParseFeeTable(data)
}

func ParseFeeTable(data []byte) (domain.FeeTable, error) {
	var file feeTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fee table: %w", err)
	}
	if len(file.Manufacturers) == 0 {
		return nil, fmt.Errorf("parse fee table: no manufacturers defined")
	}

	table := make(domain.FeeTable, len(file.Manufacturers))
	for name, fees := range file.Manufacturers {
		if name == "" {
			return nil, fmt.Errorf("parse fee table: empty manufacturer name")
		}
		if fees.AcquisitionFee < 0 || fees.DispositionFee < 0 {
			return nil, fmt.Errorf("parse fee table: negative fee for %s", name)
		}
		table[name] = fees
	}
	return table, nil
}
