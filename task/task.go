package task

import (
	"fmt"
)

const (
	Row Generation = iota
	Column
	Image
)

// Generation decides how a raster is cut into tasks.
type Generation int

func (g Generation) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Generation(%d)", int(g))
	}
	return []string{
		"Row", "Column", "Image",
	}[g]
}

func (g Generation) Valid() bool {
	return g >= Row && g <= Image
}

// Count returns the number of tasks Partition produces for a width x height raster.
func (g Generation) Count(width uint, height uint) uint {
	if width == 0 || height == 0 {
		return 0
	}
	switch g {
	case Row:
		return height
	case Column:
		return width
	case Image:
		return 1
	}
	return 0
}

// Task is a set of pixels that no other task of the same partition contains.
type Task struct {
	Coordinates []Coordinate
	ID          uint
}

func NewTask(id uint) Task {
	return Task{
		ID: id,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Coordinate Count: %d}", len(t.Coordinates))
	return output
}

func (t *Task) AddCoordinate(coordinate Coordinate) {
	t.Coordinates = append(t.Coordinates, coordinate)
}

func (t *Task) AddRow(imageRow uint, imageWidth uint) {
	var c uint
	for c = 0; c < imageWidth; c++ {
		t.AddCoordinate(Coordinate{Column: c, Row: imageRow})
	}
}

func (t *Task) AddColumn(imageColumn uint, imageHeight uint) {
	var r uint
	for r = 0; r < imageHeight; r++ {
		t.AddCoordinate(Coordinate{Column: imageColumn, Row: r})
	}
}

func (t *Task) AddImage(imageWidth uint, imageHeight uint) {
	var r, c uint
	for r = 0; r < imageHeight; r++ {
		for c = 0; c < imageWidth; c++ {
			t.AddCoordinate(Coordinate{Column: c, Row: r})
		}
	}
}

// Partition cuts a width x height raster into tasks. Every pixel lands in exactly one task.
func Partition(generation Generation, width uint, height uint) ([]Task, error) {
	if !generation.Valid() {
		return nil, fmt.Errorf("unknown generation type: %d", generation)
	}

	tasks := make([]Task, 0, generation.Count(width, height))
	if width == 0 || height == 0 {
		return tasks, nil
	}

	switch generation {
	case Row:
		var row uint
		for row = 0; row < height; row++ {
			t := NewTask(uint(len(tasks)))
			t.AddRow(row, width)
			tasks = append(tasks, t)
		}
	case Column:
		var column uint
		for column = 0; column < width; column++ {
			t := NewTask(uint(len(tasks)))
			t.AddColumn(column, height)
			tasks = append(tasks, t)
		}
	case Image:
		t := NewTask(0)
		t.AddImage(width, height)
		tasks = append(tasks, t)
	}
	return tasks, nil
}
