package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/axellelanca/portfolio/cmd"
	apperrors "github.com/axellelanca/portfolio/internal/errors"
	"github.com/axellelanca/portfolio/internal/services"
	"github.com/spf13/cobra"
)

var newProject services.NewProject

// AddProjectCmd represents the 'add-project' command
var AddProjectCmd = &cobra.Command{
	Use:   "add-project",
	Short: "Adds a project to the portfolio.",
	Long: `Adds a project with its links, categories and tags. Missing categories
and tags are created.

Example:
  portfolio add-project --title="Weather App" --github="https://github.com/me/weather" \
    --category="Web Development" --tag=Go --tag=HTMX --featured`,
	Run: func(_ *cobra.Command, _ []string) {
		for _, link := range []string{newProject.GitHubLink, newProject.LiveDemoLink} {
			if link == "" {
				continue
			}
			if _, err := url.ParseRequestURI(link); err != nil {
				fmt.Printf("Error: Invalid URL format %q: %v\n", link, err)
				os.Exit(1)
			}
		}

		s := openStore()
		defer s.close()

		p, err := s.projects.CreateProject(context.Background(), newProject)
		if err != nil {
			log.Fatalf("Failed to create project: %v", err)
		}
		fmt.Printf("Project created successfully:\n")
		fmt.Printf("ID: %d\n", p.ID)
		fmt.Printf("Title: %s\n", p.Title)
	},
}

// DeleteProjectCmd represents the 'delete-project' command
var DeleteProjectCmd = &cobra.Command{
	Use:   "delete-project [id]",
	Short: "Deletes a project. Its click events are kept without a project.",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 0)
		if err != nil || id == 0 {
			fmt.Printf("Error: invalid project ID %q\n", args[0])
			os.Exit(1)
		}

		s := openStore()
		defer s.close()

		if err := s.projects.DeleteProject(context.Background(), uint(id)); err != nil {
			if errors.Is(err, apperrors.ErrProjectNotFound) {
				fmt.Printf("Error: project %d not found\n", id)
				os.Exit(1)
			}
			log.Fatalf("Failed to delete project: %v", err)
		}
		fmt.Printf("Project %d deleted.\n", id)
	},
}

func init() {
	f := AddProjectCmd.Flags()
	f.StringVar(&newProject.Title, "title", "", "Project title")
	f.StringVar(&newProject.Description, "description", "", "Project description")
	f.StringVar(&newProject.ImageURL, "image", "", "Project image URL")
	f.StringVar(&newProject.GitHubLink, "github", "", "GitHub repository URL")
	f.StringVar(&newProject.LiveDemoLink, "demo", "", "Live demo URL")
	f.StringSliceVar(&newProject.Categories, "category", nil, "Category name (repeatable)")
	f.StringSliceVar(&newProject.Tags, "tag", nil, "Tag name (repeatable)")
	f.BoolVar(&newProject.Featured, "featured", false, "Mark the project as featured")
	_ = AddProjectCmd.MarkFlagRequired("title")

	cmd.RootCmd.AddCommand(AddProjectCmd, DeleteProjectCmd)
}
