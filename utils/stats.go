package utils

import "time"

// PopulationSample is the population after one generation
type PopulationSample struct {
	Generation int
	Population int
}

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	TotalBirths          int
	TotalDeaths          int
	StartTime            time.Time

	// Population over the run, for plotting
	History []PopulationSample
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.History = append(s.History, PopulationSample{Generation: generation, Population: population})
}

// RecordTransitions accumulates births and deaths from one step
func (s *Stats) RecordTransitions(births, deaths int) {
	s.TotalBirths += births
	s.TotalDeaths += deaths
}
