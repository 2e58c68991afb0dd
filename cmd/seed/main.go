// Command seed resets the database and loads a small demo workspace.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	dbadapter "github.com/Abdullah-yafai/project-managment/internal/adapter/db"
	"github.com/Abdullah-yafai/project-managment/internal/adapter/security"
	appservice "github.com/Abdullah-yafai/project-managment/internal/app/service"
	"github.com/Abdullah-yafai/project-managment/internal/config"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

const seedPassword = "Password123!"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	cfg := config.LoadConfig()
	if cfg.IsProduction() {
		logger.Fatal("refusing to seed a production database")
	}

	if err := dbadapter.RunMigrations(dbadapter.BuildDSN(cfg)); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := resetTables(ctx, db); err != nil {
		logger.Fatal("failed to clear database", zap.Error(err))
	}
	if err := seed(ctx, dbadapter.NewStore(db), cfg); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("seed done")
}

func resetTables(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
SET FOREIGN_KEY_CHECKS = 0;
TRUNCATE TABLE comments;
TRUNCATE TABLE tasks;
TRUNCATE TABLE projects;
TRUNCATE TABLE users;
TRUNCATE TABLE departments;
TRUNCATE TABLE organizations;
SET FOREIGN_KEY_CHECKS = 1;
`)
	return err
}

func seed(ctx context.Context, store *dbadapter.Store, cfg *config.Config) error {
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	registration := appservice.NewRegistrationService(store, hasher, nil)
	departments := appservice.NewDepartmentService(store)
	projects := appservice.NewProjectService(store)
	tasks := appservice.NewTaskService(store)
	comments := appservice.NewCommentService(store)

	owner, err := registration.Register(ctx, domain.RegisterInput{
		Name:     "Owner User",
		Email:    "owner@test.com",
		Password: seedPassword,
		Membership: domain.CreateOrganization{
			Name:         "Abdullah Enterprise",
			BillingEmail: "admin@abdullah.com",
			Plan:         domain.PlanFree,
		},
	})
	if err != nil {
		return fmt.Errorf("register owner: %w", err)
	}
	orgID := owner.OrganizationID
	zap.L().Info("created organization", zap.String("id", orgID))

	depts := make(map[string]domain.Department)
	for _, name := range []string{"Web", "Mobile", "HR", "Finance"} {
		dept, err := departments.Create(ctx, domain.CreateDepartmentInput{Name: name, OrganizationID: orgID})
		if err != nil {
			return fmt.Errorf("create department %s: %w", name, err)
		}
		depts[name] = dept
		zap.L().Info("created department", zap.String("name", name), zap.String("id", dept.ID))
	}

	manager, err := join(ctx, registration, "Manager User", "manager@test.com", orgID, depts["Mobile"].ID, domain.RoleManager)
	if err != nil {
		return err
	}
	employee, err := join(ctx, registration, "Employee User", "employee@test.com", orgID, depts["HR"].ID, domain.RoleEmployee)
	if err != nil {
		return err
	}

	plans := []struct {
		name        string
		department  string
		description string
		members     []string
		priority    domain.Priority
	}{
		{"Website Revamp", "Web", "Revamp company website for better UX.", []string{owner.ID, employee.ID}, domain.PriorityHigh},
		{"Mobile App", "Mobile", "Build new mobile app v1.0", []string{owner.ID, manager.ID}, domain.PriorityMedium},
	}

	now := time.Now().UTC()
	for _, plan := range plans {
		departmentID := depts[plan.department].ID
		project, err := projects.Create(ctx, domain.CreateProjectInput{
			Name:           plan.name,
			OrganizationID: orgID,
			DepartmentID:   &departmentID,
			Description:    plan.description,
			MemberIDs:      plan.members,
			Priority:       plan.priority,
		})
		if err != nil {
			return fmt.Errorf("create project %s: %w", plan.name, err)
		}
		zap.L().Info("created project", zap.String("name", project.Name), zap.String("slug", project.Slug))

		taskPlans := []struct {
			title    string
			assignee string
			status   domain.TaskStatus
			priority domain.Priority
			due      time.Duration
		}{
			{"Setup - " + plan.name, employee.ID, domain.TaskStatusTodo, domain.PriorityHigh, 7 * 24 * time.Hour},
			{"Implementation - " + plan.name, manager.ID, domain.TaskStatusInProgress, domain.PriorityMedium, 14 * 24 * time.Hour},
			{"QA & Wrap-up - " + plan.name, owner.ID, domain.TaskStatusTodo, domain.PriorityLow, 21 * 24 * time.Hour},
		}
		for _, tp := range taskPlans {
			assignee := tp.assignee
			dueDate := now.Add(tp.due)
			task, err := tasks.Create(ctx, domain.CreateTaskInput{
				Title:        tp.title,
				Description:  "Seeded work item for " + plan.name,
				ProjectID:    project.ID,
				DepartmentID: &departmentID,
				AssigneeID:   &assignee,
				Status:       tp.status,
				Priority:     tp.priority,
				DueDate:      &dueDate,
			})
			if err != nil {
				return fmt.Errorf("create task %s: %w", tp.title, err)
			}

			if _, err := comments.Create(ctx, domain.CreateCommentInput{
				TaskID:   task.ID,
				AuthorID: employee.ID,
				Body:     "This is a seed comment for " + task.Title,
			}); err != nil {
				return fmt.Errorf("comment on task %s: %w", task.Title, err)
			}
		}
	}

	return nil
}

func join(ctx context.Context, registration *appservice.RegistrationService, name, email, orgID, departmentID string, role domain.Role) (domain.User, error) {
	user, err := registration.Register(ctx, domain.RegisterInput{
		Name:     name,
		Email:    email,
		Password: seedPassword,
		Membership: domain.JoinOrganization{
			OrganizationID: orgID,
			DepartmentID:   departmentID,
			Role:           role,
		},
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("register %s: %w", email, err)
	}
	zap.L().Info("created user", zap.String("email", email), zap.String("role", string(role)))
	return user, nil
}
