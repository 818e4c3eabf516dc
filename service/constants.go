package service

import "time"

const (
	DefaultLeaseTermMonths = 36
	MoneyFactorToAPR       = 2400.0 // APR (%) per unit of money factor

	DefaultCacheTTL = 24 * time.Hour
	cacheKeyPrefix  = "lease:v1:"
)
