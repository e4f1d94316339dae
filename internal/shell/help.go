package shell

const helpText = `Available commands:

Directory operations:
  ls [path]          List directory contents
  ls -l [path]       List with permissions, size and modification time
  cd [path]          Change directory (no argument returns to the root)
  pwd                Show current directory

File information:
  file <filename>    Show file type
  stat <filename>    Show detailed file information
  du [path]          Show file or directory size in bytes
  du -h [path]       Show human-readable size (KB/MB/GB)

File content:
  cat <filename>     Display file content
  hexdump [-offset N] [-len N] <filename>
                     Display a binary dump of the file, 8 bytes per line

Other:
  help, ?            Show this help message
  exit, quit         Exit the program

Note: access is restricted to the root directory`
