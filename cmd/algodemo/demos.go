package main

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-algos/Anagrams"
	"github.com/g-m-twostay/go-algos/Greedy"
	"github.com/g-m-twostay/go-algos/Search"
	"github.com/g-m-twostay/go-algos/Sorts"
	"github.com/g-m-twostay/go-algos/Trees"
	"go.uber.org/zap"
)

type demo func(w io.Writer, log *zap.SugaredLogger, c *Config) error

func printMin(w io.Writer, name string, t Trees.Tree[int]) {
	if m, has := t.Minimum(); has {
		fmt.Fprintf(w, "%s min %d\n", name, m)
	} else {
		fmt.Fprintf(w, "%s min <empty>\n", name)
	}
}

func runAVL(w io.Writer, log *zap.SugaredLogger, c *Config) error {
	t := Trees.NewAVLTree(c.AVL.Values...)
	log.Debugw("built avl tree", "size", t.Size(), "height", t.Height())
	fmt.Fprintf(w, "avl inorder %v\n", t.InOrder())
	fmt.Fprintf(w, "avl preorder %v\n", t.PreOrder())
	fmt.Fprintf(w, "avl postorder %v\n", t.PostOrder())
	printMin(w, "avl", t)
	for _, v := range c.AVL.Remove {
		if !t.Remove(v) {
			log.Infow("value not in avl tree", "value", v)
		}
		fmt.Fprintf(w, "avl remove %d inorder %v\n", v, t.InOrder())
		printMin(w, "avl", t)
	}
	if t.Corrupt() {
		return fmt.Errorf("avl tree corrupt after %d removals", len(c.AVL.Remove))
	}
	return nil
}

func runBST(w io.Writer, log *zap.SugaredLogger, c *Config) error {
	t := new(Trees.BSTree[int])
	for _, v := range c.BST.Values {
		t.Insert(v)
	}
	for _, v := range c.BST.Remove {
		if !t.Remove(v) {
			log.Infow("value not in bst", "value", v)
		}
	}
	fmt.Fprintf(w, "bst preorder before balance %v\n", t.PreOrder())
	fmt.Fprintf(w, "bst height before balance %d\n", t.Height())
	t.Balance()
	fmt.Fprintf(w, "bst preorder after balance %v\n", t.PreOrder())
	fmt.Fprintf(w, "bst height after balance %d\n", t.Height())
	printMin(w, "bst", t)
	return nil
}

func runSearch(w io.Writer, log *zap.SugaredLogger, c *Config) error {
	sorted := Sorts.Merge(c.Search.Sorted)
	for _, v := range c.Search.Targets {
		i, in := Search.Index(sorted, v)
		log.Debugw("searched", "value", v, "index", i)
		fmt.Fprintf(w, "search %d %v\n", v, in)
	}
	return nil
}

func runKnapsack(w io.Writer, log *zap.SugaredLogger, c *Config) error {
	s, err := Greedy.Fractional(c.Knapsack.Items, c.Knapsack.Capacity)
	if err != nil {
		return fmt.Errorf("knapsack: %w", err)
	}
	for i, it := range c.Knapsack.Items {
		fmt.Fprintf(w, "knapsack item %d profit %g fraction %.4g gain %.4g\n", i, it.Profit, s.Fractions[i], it.Profit*s.Fractions[i])
	}
	log.Debugw("knapsack filled", "weight", s.Weight, "capacity", c.Knapsack.Capacity)
	fmt.Fprintf(w, "knapsack profit %.4f\n", s.Profit)
	return nil
}

func runAnagrams(w io.Writer, _ *zap.SugaredLogger, c *Config) error {
	for _, g := range Anagrams.Group(c.Anagrams) {
		fmt.Fprintf(w, "anagrams %v\n", g)
	}
	return nil
}

func runSort(w io.Writer, _ *zap.SugaredLogger, c *Config) error {
	fmt.Fprintf(w, "sort merge %v\n", Sorts.Merge(c.Sort))
	fmt.Fprintf(w, "sort insertion %v\n", Sorts.Insertion(append([]int(nil), c.Sort...)))
	fmt.Fprintf(w, "sort bubble %v\n", Sorts.Bubble(append([]int(nil), c.Sort...)))
	return nil
}
