package zemen

import (
	"testing"
	"time"
)

func BenchmarkGregorianToJDN(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GregorianToJDN(2015, 9, 11)
	}
}

func BenchmarkJDNToGregorian(b *testing.B) {
	for i := 0; i < b.N; i++ {
		JDNToGregorian(2457277)
	}
}

func BenchmarkJDNToEthiopian(b *testing.B) {
	for i := 0; i < b.N; i++ {
		JDNToEthiopian(2457277)
	}
}

func BenchmarkGregorianToEthiopian(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GregorianToEthiopian(2015, 9, 11)
	}
}

func BenchmarkEthiopianToGregorian(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EthiopianToGregorian(2008, 1, 1)
	}
}

func BenchmarkFromTime(b *testing.B) {
	t := time.Date(2023, time.September, 11, 12, 0, 0, 0, time.UTC)
	for i := 0; i < b.N; i++ {
		FromTime(t)
	}
}
