package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"table-profiler/internal/adapter"
	"table-profiler/internal/config"
	"table-profiler/internal/logging"
	"table-profiler/internal/profile"
	"table-profiler/internal/profiler"
	"table-profiler/internal/renderer"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	dbType   string
	host     string
	port     int
	database string
	schema   string
	user     string
	table    string
	output   string
	markdown string
	verbose  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ "+logging.SanitizeError(err))
		os.Exit(1)
	}
}

// newRootCmd 组装命令树。cobra 自带的错误与用法输出全部关闭，
// 任何失败都由 main 统一打印一行。
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "table-profiler",
		Short:         "表数据剖析工具",
		Long:          "连接关系型数据库，统计指定表每列的唯一值、最高频值与类型信息，生成 xlsx 汇总报表",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "剖析单个表并生成汇总报表",
		RunE:  runSummary,
	}

	summaryCmd.Flags().StringVar(&dbType, "type", "", "数据库类型 (postgres/mysql/sqlserver/sqlite)")
	summaryCmd.Flags().StringVar(&host, "host", "", "数据库主机")
	summaryCmd.Flags().IntVar(&port, "port", 0, "端口（缺省用各类型默认端口）")
	summaryCmd.Flags().StringVar(&database, "database", "", "数据库名（sqlite 为文件路径）")
	summaryCmd.Flags().StringVar(&schema, "schema", "", "schema 名（缺省按数据库类型推断）")
	summaryCmd.Flags().StringVar(&user, "user", "", "用户名")
	summaryCmd.Flags().StringVar(&table, "table", "", "表名")
	summaryCmd.Flags().StringVar(&output, "output", "", "输出 xlsx 文件路径")
	summaryCmd.Flags().StringVar(&markdown, "markdown", "", "可选的 Markdown 字典输出路径")
	summaryCmd.Flags().BoolVar(&verbose, "verbose", false, "输出调试日志")
	summaryCmd.MarkFlagRequired("table")
	summaryCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(summaryCmd)
	return rootCmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 显式传入的命令行参数覆盖环境变量
	if cmd.Flags().Changed("type") {
		cfg.Type = dbType
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}
	if cmd.Flags().Changed("database") {
		cfg.Database = database
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = schema
	}
	if cmd.Flags().Changed("user") {
		cfg.User = user
	}
	cfg.Table = table
	cfg.Output = output
	cfg.Markdown = markdown

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	// sqlite 直接打开文件，不需要凭证
	if cfg.Type != "sqlite" {
		pw, err := readPassword(cfg.User)
		if err != nil {
			return err
		}
		cfg.Password = pw
	}

	fmt.Println("🔍 开始剖析表数据...")

	sess, err := adapter.New(cfg.Type, adapter.Params{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Database: cfg.Database,
		User:     cfg.User,
		Password: cfg.Password,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	ref := profile.TableReference{Schema: cfg.Schema, Table: cfg.Table}
	source := profile.SourceInfo{Host: cfg.Host, Database: cfg.Database}

	p := profiler.New(sess, source, logger)
	tp, err := p.BuildProfile(ref)
	if err != nil {
		return err
	}

	fmt.Printf("✓ 表 %s 共 %d 行，%d 列\n", ref, tp.TotalRowCount, len(tp.Columns))

	fmt.Println("\n📝 生成报表文件...")

	xlsxRenderer := renderer.NewXLSXRenderer()
	if err := xlsxRenderer.Render(tp, cfg.Output); err != nil {
		return err
	}
	fmt.Printf("✓ %s\n", cfg.Output)

	if cfg.Markdown != "" {
		mdRenderer := renderer.NewMarkdownRenderer()
		if err := os.WriteFile(cfg.Markdown, []byte(mdRenderer.Render(tp)), 0644); err != nil {
			return &profile.IOError{Path: cfg.Markdown, Err: err}
		}
		fmt.Printf("✓ %s\n", cfg.Markdown)
	}

	fmt.Println("\n✅ 剖析完成！")
	return nil
}

// readPassword 交互式读取密码，终端下不回显；
// 非终端（管道）时从标准输入读一行
func readPassword(user string) (string, error) {
	fmt.Printf("请输入用户 %s 的密码: ", user)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
