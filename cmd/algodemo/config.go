package main

import (
	"fmt"
	"os"

	"github.com/g-m-twostay/go-algos/Greedy"
	"gopkg.in/yaml.v3"
)

type TreeConfig struct {
	Values []int `yaml:"values"`
	Remove []int `yaml:"remove"`
}

type SearchConfig struct {
	Sorted  []int `yaml:"sorted"`
	Targets []int `yaml:"targets"`
}

type KnapsackConfig struct {
	Capacity float64       `yaml:"capacity"`
	Items    []Greedy.Item `yaml:"items"`
}

type Config struct {
	AVL      TreeConfig     `yaml:"avl"`
	BST      TreeConfig     `yaml:"bst"`
	Search   SearchConfig   `yaml:"search"`
	Knapsack KnapsackConfig `yaml:"knapsack"`
	Anagrams []string       `yaml:"anagrams"`
	Sort     []int          `yaml:"sort"`
}

func seq(from, to int) []int {
	s := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		s = append(s, i)
	}
	return s
}

// DefaultConfig holds the inputs the demos run with when no file is given.
func DefaultConfig() *Config {
	return &Config{
		AVL: TreeConfig{
			Values: []int{100, 50, 150, 25, 200, 125, 28, 172, 15, 128, 121, 210},
			Remove: []int{128, 15},
		},
		BST: TreeConfig{
			Values: seq(1, 50),
		},
		Search: SearchConfig{
			Sorted:  seq(1, 50),
			Targets: []int{100, 50, 1, 25, 0},
		},
		Knapsack: KnapsackConfig{
			Capacity: 15,
			Items: []Greedy.Item{
				{Profit: 10, Weight: 2}, {Profit: 5, Weight: 3}, {Profit: 15, Weight: 5}, {Profit: 7, Weight: 7},
				{Profit: 6, Weight: 1}, {Profit: 18, Weight: 4}, {Profit: 3, Weight: 1},
			},
		},
		Anagrams: []string{"eat", "tea", "tan", "ate", "nat", "bat"},
		Sort:     []int{2, 6, 5, 3, 8, 7, 1, 0},
	}
}

// LoadConfig reads the YAML file at path over the defaults, so sections missing
// from the file keep their default inputs. An empty path gives the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}
