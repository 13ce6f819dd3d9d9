package main

import (
	"context"
	"errors"

	"codecade/internal/app/service"
	"codecade/internal/common"
	"codecade/internal/domain/model"
	"codecade/internal/domain/repository"
	"codecade/internal/platform/config"
	"codecade/internal/platform/database"

	"github.com/rs/zerolog/log"
)

var starterProblems = []service.CreateProblemRequest{
	{
		Title:       "Two Sum",
		Difficulty:  model.DifficultyEasy,
		Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
		Tags:        []string{"Array", "Hash Table"}, AvgTimeMinutes: 15, SuccessRate: 85,
	},
	{
		Title:       "Valid Parentheses",
		Difficulty:  model.DifficultyEasy,
		Description: "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.",
		Tags:        []string{"Stack", "String"}, AvgTimeMinutes: 10, SuccessRate: 78,
	},
	{
		Title:       "Reverse Linked List",
		Difficulty:  model.DifficultyEasy,
		Description: "Given the head of a singly linked list, reverse the list, and return the reversed list.",
		Tags:        []string{"Linked List", "Recursion"}, AvgTimeMinutes: 8, SuccessRate: 72,
	},
	{
		Title:       "Binary Search",
		Difficulty:  model.DifficultyEasy,
		Description: "Given an array of integers nums which is sorted in ascending order, and an integer target, write a function to search target in nums.",
		Tags:        []string{"Array", "Binary Search"}, AvgTimeMinutes: 10, SuccessRate: 80,
	},
	{
		Title:       "Climbing Stairs",
		Difficulty:  model.DifficultyEasy,
		Description: "You are climbing a staircase. It takes n steps to reach the top. Each time you can either climb 1 or 2 steps. In how many distinct ways can you climb to the top?",
		Tags:        []string{"Dynamic Programming"}, AvgTimeMinutes: 15, SuccessRate: 75,
	},
	{
		Title:       "Maximum Subarray",
		Difficulty:  model.DifficultyMedium,
		Description: "Given an integer array nums, find the contiguous subarray which has the largest sum and return its sum.",
		Tags:        []string{"Array", "Dynamic Programming"}, AvgTimeMinutes: 20, SuccessRate: 65,
	},
	{
		Title:       "Longest Substring Without Repeating Characters",
		Difficulty:  model.DifficultyMedium,
		Description: "Given a string s, find the length of the longest substring without repeating characters.",
		Tags:        []string{"String", "Sliding Window", "Hash Table"}, AvgTimeMinutes: 25, SuccessRate: 58,
	},
	{
		Title:       "3Sum",
		Difficulty:  model.DifficultyMedium,
		Description: "Given an integer array nums, return all the triplets [nums[i], nums[j], nums[k]] such that i != j, i != k, and j != k, and nums[i] + nums[j] + nums[k] == 0.",
		Tags:        []string{"Array", "Two Pointers", "Sorting"}, AvgTimeMinutes: 30, SuccessRate: 52,
	},
	{
		Title:       "Container With Most Water",
		Difficulty:  model.DifficultyMedium,
		Description: "You are given an integer array height of length n. Find two lines that together with the x-axis form a container, such that the container contains the most water.",
		Tags:        []string{"Array", "Two Pointers", "Greedy"}, AvgTimeMinutes: 25, SuccessRate: 60,
	},
}

// Seeds the starter problem catalog. Safe to re-run: problems that already
// exist (by slug) are skipped.
func main() {
	config.Load()
	database.Connect()
	defer database.Close()

	problemRepo := repository.NewPgProblemRepository(database.DB)
	problemService := service.NewProblemService(problemRepo)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, req := range starterProblems {
		if _, err := problemService.CreateProblem(ctx, req); err != nil {
			if errors.Is(err, common.ErrConflict) {
				skipped++
				continue
			}
			log.Fatal().Err(err).Str("title", req.Title).Msg("Failed to seed problem")
		}
		created++
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("Problem catalog seeded")
}
